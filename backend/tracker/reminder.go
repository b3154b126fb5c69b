package tracker

import (
	"fmt"
	"time"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// Reminder is the streak-style nudge derived from the last log date.
type Reminder struct {
	Message      string `json:"message"`
	Severity     string `json:"severity"`
	DaysSinceLog int    `json:"daysSinceLog"`
}

// ReminderFor compares the last log date with today and picks a nudge.
// DaysSinceLog is -1 when the user has never logged.
func ReminderFor(p *models.Profile, clock Clock) Reminder {
	if p.LastLogDate == "" {
		return Reminder{
			Message:      "No logs yet. Start by writing what you learned today!",
			Severity:     SeverityWarn,
			DaysSinceLog: -1,
		}
	}

	last, err := time.Parse(models.DateLayout, p.LastLogDate)
	if err != nil {
		return Reminder{
			Message:      "No logs yet. Start by writing what you learned today!",
			Severity:     SeverityWarn,
			DaysSinceLog: -1,
		}
	}

	// Format-then-parse pins "today" to the clock's local calendar date;
	// truncating the instant would shift the day boundary for non-UTC
	// clocks.
	today, _ := time.Parse(models.DateLayout, clock.Today().Format(models.DateLayout))
	days := int(today.Sub(last).Hours() / 24)
	switch {
	case days <= 0:
		return Reminder{
			Message:      "You already logged today. Keep the streak alive! 🔥",
			Severity:     SeveritySuccess,
			DaysSinceLog: 0,
		}
	case days == 1:
		return Reminder{
			Message:      "You logged yesterday — a quick entry today keeps your streak going.",
			Severity:     SeverityInfo,
			DaysSinceLog: 1,
		}
	default:
		return Reminder{
			Message:      fmt.Sprintf("It's been %d days since your last log. Jump back in!", days),
			Severity:     SeverityWarn,
			DaysSinceLog: days,
		}
	}
}
