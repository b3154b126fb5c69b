package tracker

import (
	"math"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// Goal lifecycle states derived from completion percentage.
const (
	StateActive    = "active"
	StateCompleted = "completed"
)

// Progress is the completion summary for one roadmap.
type Progress struct {
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
	State     string `json:"state"`
}

// Calculate derives a Progress from raw counts. An empty roadmap is 0%,
// never a division error, and stays active.
func Calculate(completed, total int) Progress {
	p := Progress{Completed: completed, Total: total, State: StateActive}
	if total > 0 {
		p.Percent = int(math.Round(100 * float64(completed) / float64(total)))
	}
	if p.Total > 0 && p.Percent >= 100 {
		p.State = StateCompleted
	}
	return p
}

// GoalProgress computes progress for a single selected goal.
func GoalProgress(p *models.Profile, goal string) Progress {
	return Calculate(len(p.Completed[goal]), len(p.Roadmaps[goal].Topics()))
}

// OverallProgress computes progress across all of the user's goals.
func OverallProgress(p *models.Profile) Progress {
	return Calculate(p.TotalCompleted(), p.TotalTopics())
}
