// Package tracker implements the progress-tracking engine: topic detection
// from journal text, completion percentages, the trailing-week analysis,
// gamification and the cross-user leaderboard.
package tracker

import "time"

// Clock supplies "today" so temporal logic stays testable with fixed dates.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Today() time.Time { return f.t }

// FixedClock returns a clock pinned to the given date, for tests.
func FixedClock(t time.Time) Clock { return fixedClock{t} }
