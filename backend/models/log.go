package models

import "encoding/json"

// DateLayout is the calendar-date format used everywhere in persisted
// documents and API payloads.
const DateLayout = "2006-01-02"

// LogEntry is one dated free-text journal record. Entries are append-only:
// never edited, never deleted.
type LogEntry struct {
	Date  string   `json:"date"`
	Goals []string `json:"goals"`
	Entry string   `json:"entry"`
}

// References reports whether the entry is attributed to the goal.
func (l LogEntry) References(goal string) bool {
	for _, g := range l.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts both the canonical {"goals": [...]} shape and the
// older {"goal": "..."} single-string shape.
func (l *LogEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date  string          `json:"date"`
		Goals json.RawMessage `json:"goals"`
		Goal  json.RawMessage `json:"goal"`
		Entry string          `json:"entry"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Date = raw.Date
	l.Entry = raw.Entry
	l.Goals = nil

	for _, field := range []json.RawMessage{raw.Goals, raw.Goal} {
		if len(field) == 0 {
			continue
		}
		var many []string
		if err := json.Unmarshal(field, &many); err == nil {
			l.Goals = append(l.Goals, many...)
			continue
		}
		var one string
		if err := json.Unmarshal(field, &one); err == nil && one != "" {
			l.Goals = append(l.Goals, one)
		}
	}
	return nil
}
