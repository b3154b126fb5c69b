package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

func weeklyFixture() (*models.Profile, Clock) {
	p := models.NewProfile("alice")
	p.AddGoal("Web Development", models.FlatRoadmap([]string{"HTML", "CSS", "Flexbox", "JavaScript"}))
	clock := FixedClock(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	return p, clock
}

func TestWeeklySummaryCountsWindowLogsOnly(t *testing.T) {
	p, clock := weeklyFixture()
	p.MarkCompleted("Web Development", "HTML")
	p.MarkCompleted("Web Development", "CSS")
	p.MarkCompleted("Web Development", "Flexbox")

	// HTML mentioned inside the window, CSS outside it, Flexbox never.
	p.Logs = []models.LogEntry{
		{Date: "2026-08-10", Goals: []string{"Web Development"}, Entry: "finished CSS basics"},
		{Date: "2026-08-27", Goals: []string{"Web Development"}, Entry: "wrote some html today"},
	}

	summaries := WeeklySummary(p, clock)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Completed)
	assert.Equal(t, 4, summaries[0].Total)
	assert.Equal(t, SeverityInfo, summaries[0].Severity)
}

func TestWeeklySummarySeventhDayInclusiveAtAnyTimeOfDay(t *testing.T) {
	p, _ := weeklyFixture()
	p.MarkCompleted("Web Development", "HTML")
	p.Logs = []models.LogEntry{
		{Date: "2026-08-22", Goals: []string{"Web Development"}, Entry: "html basics"},
	}

	// The window is a calendar-date range: a log dated exactly seven days
	// ago stays in even when the clock reads mid-afternoon.
	clock := FixedClock(time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC))
	summaries := WeeklySummary(p, clock)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Completed)

	// One day older falls out.
	p.Logs[0].Date = "2026-08-21"
	summaries = WeeklySummary(p, clock)
	assert.Equal(t, 0, summaries[0].Completed)
}

func TestWeeklySummaryRequiresGoalAttribution(t *testing.T) {
	p, clock := weeklyFixture()
	p.AddGoal("Python", models.FlatRoadmap([]string{"Syntax"}))
	p.MarkCompleted("Web Development", "HTML")

	// The log mentions HTML but is attributed to the other goal.
	p.Logs = []models.LogEntry{
		{Date: "2026-08-28", Goals: []string{"Python"}, Entry: "HTML detour"},
	}

	summaries := WeeklySummary(p, clock)
	require.Len(t, summaries, 2)
	assert.Equal(t, 0, summaries[0].Completed)
	assert.Equal(t, SeverityWarn, summaries[0].Severity)
}

func TestWeeklySummaryIgnoresUncompletedMentions(t *testing.T) {
	p, clock := weeklyFixture()

	// Mentioned this week but never marked complete: no weekly credit.
	p.Logs = []models.LogEntry{
		{Date: "2026-08-28", Goals: []string{"Web Development"}, Entry: "started JavaScript"},
	}

	summaries := WeeklySummary(p, clock)
	require.Len(t, summaries, 1)
	assert.Equal(t, 0, summaries[0].Completed)
}

func TestFeedbackTiers(t *testing.T) {
	tests := []struct {
		count        int
		wantSeverity string
	}{
		{0, SeverityWarn},
		{1, SeverityInfo},
		{2, SeverityInfo},
		{3, SeveritySuccess},
		{4, SeveritySuccess},
		{5, SeveritySuccess},
		{6, SeveritySuccess},
		{9, SeveritySuccess},
	}
	for _, tt := range tests {
		msg, severity := feedbackFor(tt.count)
		assert.NotEmpty(t, msg, "count %d", tt.count)
		assert.Equal(t, tt.wantSeverity, severity, "count %d", tt.count)
	}

	// Six and up share the legend-tier message.
	six, _ := feedbackFor(6)
	ten, _ := feedbackFor(10)
	assert.Equal(t, six, ten)
	five, _ := feedbackFor(5)
	assert.NotEqual(t, five, six)
}
