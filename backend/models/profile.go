package models

// CurrentSchemaVersion is bumped whenever the persisted profile shape
// changes. Loading upgrades older documents in one place (see normalize.go).
const CurrentSchemaVersion = 2

// Profile is the entire persisted state for one user. Each interaction loads
// the document, mutates it in memory and writes it back whole; there is no
// partial update path.
type Profile struct {
	Username      string              `json:"username"`
	PasswordHash  string              `json:"passwordHash,omitempty"`
	Goals         []string            `json:"goals"`
	Roadmaps      map[string]Roadmap  `json:"roadmaps"`
	Completed     map[string][]string `json:"completed"`
	Logs          []LogEntry          `json:"logs"`
	LastLogDate   string              `json:"lastLogDate,omitempty"`
	Durations     map[string]float64  `json:"durations"`
	Achievements  []string            `json:"achievements"`
	Notifications bool                `json:"notificationsEnabled"`
	SchemaVersion int                 `json:"schemaVersion"`
}

// NewProfile returns an empty profile for a fresh user.
func NewProfile(username string) *Profile {
	return &Profile{
		Username:      username,
		Goals:         []string{},
		Roadmaps:      map[string]Roadmap{},
		Completed:     map[string][]string{},
		Logs:          []LogEntry{},
		Durations:     map[string]float64{},
		Achievements:  []string{},
		SchemaVersion: CurrentSchemaVersion,
	}
}

// HasGoal reports whether the goal is currently selected.
func (p *Profile) HasGoal(goal string) bool {
	for _, g := range p.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// AddGoal selects a goal with the given roadmap. Re-adding an existing goal
// is a no-op so the operation is idempotent.
func (p *Profile) AddGoal(goal string, roadmap Roadmap) bool {
	if p.HasGoal(goal) {
		return false
	}
	p.Goals = append(p.Goals, goal)
	p.Roadmaps[goal] = roadmap
	if _, ok := p.Completed[goal]; !ok {
		p.Completed[goal] = []string{}
	}
	if _, ok := p.Durations[goal]; !ok {
		p.Durations[goal] = DefaultDailyDurationHours
	}
	return true
}

// RemoveGoal deletes the goal together with its roadmap, completions and
// duration target. Logs that reference the goal are kept: they are
// append-only history and orphan references are tolerated.
func (p *Profile) RemoveGoal(goal string) bool {
	if !p.HasGoal(goal) {
		return false
	}
	kept := p.Goals[:0]
	for _, g := range p.Goals {
		if g != goal {
			kept = append(kept, g)
		}
	}
	p.Goals = kept
	delete(p.Roadmaps, goal)
	delete(p.Completed, goal)
	delete(p.Durations, goal)
	return true
}

// DefaultDailyDurationHours is the daily learning target assigned when a
// goal is selected without an explicit duration.
const DefaultDailyDurationHours = 1

// IsCompleted reports whether the topic is marked complete for the goal.
func (p *Profile) IsCompleted(goal, topic string) bool {
	for _, t := range p.Completed[goal] {
		if t == topic {
			return true
		}
	}
	return false
}

// MarkCompleted records a topic as complete for the goal. Returns false
// when the topic was already complete or is not part of the goal's roadmap.
func (p *Profile) MarkCompleted(goal, topic string) bool {
	if p.IsCompleted(goal, topic) {
		return false
	}
	if !p.Roadmaps[goal].HasTopic(topic) {
		return false
	}
	p.Completed[goal] = append(p.Completed[goal], topic)
	return true
}

// UnmarkCompleted removes a topic from the goal's completed set (manual
// checkbox untick). Achievements already earned are never revoked by this.
func (p *Profile) UnmarkCompleted(goal, topic string) bool {
	topics := p.Completed[goal]
	for i, t := range topics {
		if t == topic {
			p.Completed[goal] = append(topics[:i], topics[i+1:]...)
			return true
		}
	}
	return false
}

// TotalCompleted counts completed topics across all goals.
func (p *Profile) TotalCompleted() int {
	n := 0
	for _, topics := range p.Completed {
		n += len(topics)
	}
	return n
}

// TotalTopics counts roadmap topics across all goals.
func (p *Profile) TotalTopics() int {
	n := 0
	for _, rm := range p.Roadmaps {
		n += len(rm.Topics())
	}
	return n
}

// AppendLog appends an entry and refreshes the last-log date. Entries are
// immutable once appended and the slice stays in chronological order.
func (p *Profile) AppendLog(entry LogEntry) {
	p.Logs = append(p.Logs, entry)
	p.LastLogDate = entry.Date
}

// DistinctLogDates counts the number of different days the user logged on.
func (p *Profile) DistinctLogDates() int {
	seen := map[string]struct{}{}
	for _, l := range p.Logs {
		seen[l.Date] = struct{}{}
	}
	return len(seen)
}

// HasAchievement reports whether the badge has been unlocked.
func (p *Profile) HasAchievement(badge string) bool {
	for _, a := range p.Achievements {
		if a == badge {
			return true
		}
	}
	return false
}

// Unlock adds a badge if not already present. Badges are append-only:
// nothing in the system removes one once it has been earned.
func (p *Profile) Unlock(badge string) bool {
	if p.HasAchievement(badge) {
		return false
	}
	p.Achievements = append(p.Achievements, badge)
	return true
}
