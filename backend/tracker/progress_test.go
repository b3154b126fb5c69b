package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		completed   int
		total       int
		wantPercent int
		wantState   string
	}{
		{"empty roadmap is zero percent, not an error", 0, 0, 0, StateActive},
		{"nothing done", 0, 12, 0, StateActive},
		{"rounds up", 2, 12, 17, StateActive},
		{"rounds half away from zero", 1, 8, 13, StateActive},
		{"two thirds", 2, 3, 67, StateActive},
		{"complete", 12, 12, 100, StateCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.completed, tt.total)
			assert.Equal(t, tt.wantPercent, got.Percent)
			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.completed, got.Completed)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}

func TestOverallProgress(t *testing.T) {
	p := models.NewProfile("alice")
	p.AddGoal("A", models.FlatRoadmap([]string{"T1", "T2"}))
	p.AddGoal("B", models.FlatRoadmap([]string{"T3", "T4"}))
	p.MarkCompleted("A", "T1")
	p.MarkCompleted("B", "T3")
	p.MarkCompleted("B", "T4")

	overall := OverallProgress(p)
	assert.Equal(t, 3, overall.Completed)
	assert.Equal(t, 4, overall.Total)
	assert.Equal(t, 75, overall.Percent)
}
