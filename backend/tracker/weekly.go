package tracker

import (
	"strings"
	"time"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// Feedback severities rendered by the client.
const (
	SeverityWarn    = "warn"
	SeverityInfo    = "info"
	SeveritySuccess = "success"
)

// feedbackMessages are the tiered encouragement strings, keyed by the
// number of topics credited to the trailing week. Six or more falls through
// to legendTier.
var feedbackMessages = map[int]string{
	0: "Let's jumpstart this week! Even one step counts. You've got this! 💡",
	1: "Solid step! Try hitting 2-3 topics next week. Slow progress is still progress. 🚀",
	2: "Great job tackling two topics! You’re getting warmed up. Keep going! 🏃",
	3: "Nice! Three topics completed — you’re right on track. Stay consistent! 📆",
	4: "You're crushing it! Four topics down this week — fantastic hustle! 🎉",
	5: "Wow! Five topics? That’s top-tier dedication! 🏆 Keep slaying those goals!",
}

const legendTier = "Legend mode activated! You're blazing through your goals like a pro. 🚀🌟"

// WeeklyGoalSummary is the trailing-week result for one goal.
type WeeklyGoalSummary struct {
	Goal      string `json:"goal"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
}

// WeeklySummary reconstructs per-goal weekly credit from the logs of the
// trailing 7-day window. The data model records no completion timestamps,
// so a completed topic counts for the week iff its name appears
// (case-insensitively, as a substring) in any window log attributed to the
// goal. This can double- or under-count relative to true completion events;
// it deliberately mirrors how the weekly analysis has always worked.
func WeeklySummary(p *models.Profile, clock Clock) []WeeklyGoalSummary {
	// Compare calendar dates, not instants: a log dated exactly seven days
	// ago is inside the window regardless of the clock's time of day.
	cutoff := clock.Today().AddDate(0, 0, -7).Format(models.DateLayout)

	var windowLogs []models.LogEntry
	for _, l := range p.Logs {
		if _, err := time.Parse(models.DateLayout, l.Date); err != nil {
			continue
		}
		if l.Date >= cutoff {
			windowLogs = append(windowLogs, l)
		}
	}

	summaries := make([]WeeklyGoalSummary, 0, len(p.Goals))
	for _, goal := range p.Goals {
		count := 0
		for _, topic := range p.Completed[goal] {
			if topicMentionedFor(windowLogs, goal, topic) {
				count++
			}
		}
		msg, severity := feedbackFor(count)
		summaries = append(summaries, WeeklyGoalSummary{
			Goal:      goal,
			Completed: count,
			Total:     len(p.Roadmaps[goal].Topics()),
			Message:   msg,
			Severity:  severity,
		})
	}
	return summaries
}

func topicMentionedFor(logs []models.LogEntry, goal, topic string) bool {
	needle := strings.ToLower(topic)
	for _, l := range logs {
		if l.References(goal) && strings.Contains(strings.ToLower(l.Entry), needle) {
			return true
		}
	}
	return false
}

func feedbackFor(count int) (message, severity string) {
	if count >= 6 {
		return legendTier, SeveritySuccess
	}
	message = feedbackMessages[count]
	switch {
	case count == 0:
		severity = SeverityWarn
	case count < 3:
		severity = SeverityInfo
	default:
		severity = SeveritySuccess
	}
	return message, severity
}
