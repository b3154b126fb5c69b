package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

func TestReminderFor(t *testing.T) {
	clock := FixedClock(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name         string
		lastLogDate  string
		wantDays     int
		wantSeverity string
	}{
		{"never logged", "", -1, SeverityWarn},
		{"logged today", "2026-08-29", 0, SeveritySuccess},
		{"logged yesterday", "2026-08-28", 1, SeverityInfo},
		{"five day gap", "2026-08-24", 5, SeverityWarn},
		{"unparseable date treated as never", "yesterday-ish", -1, SeverityWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.NewProfile("alice")
			p.LastLogDate = tt.lastLogDate
			r := ReminderFor(p, clock)
			assert.Equal(t, tt.wantDays, r.DaysSinceLog)
			assert.Equal(t, tt.wantSeverity, r.Severity)
			assert.NotEmpty(t, r.Message)
		})
	}
}

func TestReminderForUsesClockLocalDate(t *testing.T) {
	// Evening in UTC-5: the absolute instant is already past midnight UTC,
	// but a log written today by the same clock is still "today".
	est := time.FixedZone("EST", -5*60*60)
	clock := FixedClock(time.Date(2026, 8, 29, 20, 0, 0, 0, est))

	p := models.NewProfile("alice")
	p.LastLogDate = clock.Today().Format(models.DateLayout)
	r := ReminderFor(p, clock)
	assert.Equal(t, 0, r.DaysSinceLog)
	assert.Equal(t, SeveritySuccess, r.Severity)

	p.LastLogDate = "2026-08-28"
	r = ReminderFor(p, clock)
	assert.Equal(t, 1, r.DaysSinceLog)
	assert.Equal(t, SeverityInfo, r.Severity)
}
