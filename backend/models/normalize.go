package models

import (
	"encoding/json"
	"sort"
	"strconv"
)

// UnmarshalProfile decodes a persisted document in any schema version the
// project has ever written and upgrades it to the canonical shape. All
// legacy handling lives here; callers only ever see canonical profiles.
//
// Shapes tolerated:
//   - roadmaps as flat topic lists, period→topics maps, or sections
//     (older documents used the key "learningPaths")
//   - completed topics as a global flat list, a goal→list map, or a
//     goal→topic→bool map (older keys "progress" / "completedTopics")
//   - durations as a goal→hours map, a single scalar, or the legacy
//     key "customDailyDuration"
//   - log entries with a single "goal" string instead of "goals"
//
// Missing keys get defaults, unknown keys are dropped.
func UnmarshalProfile(data []byte) (*Profile, error) {
	var raw struct {
		Username      string                     `json:"username"`
		PasswordHash  string                     `json:"passwordHash"`
		Goals         []string                   `json:"goals"`
		Roadmaps      map[string]json.RawMessage `json:"roadmaps"`
		LearningPaths map[string]json.RawMessage `json:"learningPaths"`
		Completed     json.RawMessage            `json:"completed"`
		Progress      json.RawMessage            `json:"progress"`
		CompletedOld  json.RawMessage            `json:"completedTopics"`
		Logs          []LogEntry                 `json:"logs"`
		LastLogDate   string                     `json:"lastLogDate"`
		Durations     json.RawMessage            `json:"durations"`
		DurationOld   json.RawMessage            `json:"duration"`
		CustomDaily   json.RawMessage            `json:"customDailyDuration"`
		Achievements  []string                   `json:"achievements"`
		Notifications bool                       `json:"notificationsEnabled"`
		SchemaVersion int                        `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	p := NewProfile(raw.Username)
	p.PasswordHash = raw.PasswordHash
	p.LastLogDate = raw.LastLogDate
	p.Notifications = raw.Notifications
	if raw.Logs != nil {
		p.Logs = raw.Logs
	}
	if raw.Achievements != nil {
		p.Achievements = raw.Achievements
	}

	for _, g := range raw.Goals {
		if g != "" && !p.HasGoal(g) {
			p.Goals = append(p.Goals, g)
		}
	}

	roadmaps := raw.Roadmaps
	if roadmaps == nil {
		roadmaps = raw.LearningPaths
	}
	for goal, rm := range roadmaps {
		p.Roadmaps[goal] = decodeRoadmap(rm)
	}

	completed := firstRaw(raw.Completed, raw.Progress, raw.CompletedOld)
	applyCompleted(p, completed)

	durations := firstRaw(raw.Durations, raw.DurationOld, raw.CustomDaily)
	applyDurations(p, durations)

	normalize(p)
	return p, nil
}

// MarshalProfile encodes a profile in the canonical shape.
func MarshalProfile(p *Profile) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

func firstRaw(candidates ...json.RawMessage) json.RawMessage {
	for _, c := range candidates {
		if len(c) > 0 && string(c) != "null" {
			return c
		}
	}
	return nil
}

func decodeRoadmap(raw json.RawMessage) Roadmap {
	var sections Roadmap
	if err := json.Unmarshal(raw, &sections); err == nil && len(sections) > 0 {
		return sections
	}

	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		if len(flat) == 0 {
			return Roadmap{}
		}
		return FlatRoadmap(flat)
	}

	var periods map[string][]string
	if err := json.Unmarshal(raw, &periods); err == nil && len(periods) > 0 {
		names := make([]string, 0, len(periods))
		for name := range periods {
			names = append(names, name)
		}
		sortPeriods(names)
		rm := make(Roadmap, 0, len(names))
		for _, name := range names {
			rm = append(rm, RoadmapSection{Period: name, Topics: periods[name]})
		}
		return rm
	}

	return Roadmap{}
}

// sortPeriods orders period names like "Week 1", "Week 2", "Week 10"
// numerically by their trailing number, then lexically.
func sortPeriods(names []string) {
	trailing := func(s string) int {
		i := len(s)
		for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
			i--
		}
		n, err := strconv.Atoi(s[i:])
		if err != nil {
			return -1
		}
		return n
	}
	sort.SliceStable(names, func(i, j int) bool {
		a, b := trailing(names[i]), trailing(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
}

func applyCompleted(p *Profile, raw json.RawMessage) {
	if raw == nil {
		return
	}

	// Oldest shape: one global topic list. Attribute each topic to every
	// selected goal whose roadmap contains it.
	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		for _, goal := range p.Goals {
			for _, topic := range flat {
				if p.Roadmaps[goal].HasTopic(topic) && !p.IsCompleted(goal, topic) {
					p.Completed[goal] = append(p.Completed[goal], topic)
				}
			}
		}
		return
	}

	var perGoal map[string]json.RawMessage
	if err := json.Unmarshal(raw, &perGoal); err != nil {
		return
	}
	for goal, entry := range perGoal {
		var topics []string
		if err := json.Unmarshal(entry, &topics); err == nil {
			p.Completed[goal] = topics
			continue
		}
		var flags map[string]bool
		if err := json.Unmarshal(entry, &flags); err == nil {
			// Keep roadmap order so the normalized list is deterministic.
			var done []string
			for _, topic := range p.Roadmaps[goal].Topics() {
				if flags[topic] {
					done = append(done, topic)
				}
			}
			p.Completed[goal] = done
		}
	}
}

func applyDurations(p *Profile, raw json.RawMessage) {
	if raw == nil {
		return
	}
	var perGoal map[string]float64
	if err := json.Unmarshal(raw, &perGoal); err == nil {
		for goal, hours := range perGoal {
			p.Durations[goal] = hours
		}
		return
	}
	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil && scalar > 0 {
		for _, goal := range p.Goals {
			p.Durations[goal] = scalar
		}
	}
}

// normalize enforces the structural invariants on an upgraded profile:
// every goal has roadmap/completed/duration entries, no entries exist for
// goals that are gone, and completed topics all appear in their roadmap.
func normalize(p *Profile) {
	for _, goal := range p.Goals {
		if _, ok := p.Roadmaps[goal]; !ok {
			p.Roadmaps[goal] = Roadmap{}
		}
		if _, ok := p.Completed[goal]; !ok {
			p.Completed[goal] = []string{}
		}
		if _, ok := p.Durations[goal]; !ok {
			p.Durations[goal] = DefaultDailyDurationHours
		}
	}
	for goal := range p.Roadmaps {
		if !p.HasGoal(goal) {
			delete(p.Roadmaps, goal)
		}
	}
	for goal := range p.Completed {
		if !p.HasGoal(goal) {
			delete(p.Completed, goal)
			continue
		}
		kept := p.Completed[goal][:0]
		for _, topic := range p.Completed[goal] {
			if p.Roadmaps[goal].HasTopic(topic) {
				kept = append(kept, topic)
			}
		}
		p.Completed[goal] = kept
	}
	for goal := range p.Durations {
		if !p.HasGoal(goal) {
			delete(p.Durations, goal)
		}
	}
	p.SchemaVersion = CurrentSchemaVersion
}
