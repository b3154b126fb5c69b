package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalProfileLegacyShapes(t *testing.T) {
	// A v1-era document: learningPaths key, period-map roadmap, per-goal
	// boolean progress, single "goal" string on logs, scalar duration.
	doc := []byte(`{
		"username": "alice",
		"goals": ["Web Development"],
		"learningPaths": {
			"Web Development": {
				"Week 2": ["JavaScript", "DOM"],
				"Week 1": ["HTML", "CSS"],
				"Week 10": ["Deployment"]
			}
		},
		"progress": {
			"Web Development": {"HTML": true, "CSS": false, "DOM": true}
		},
		"logs": [
			{"date": "2026-08-20", "goal": "Web Development", "entry": "html day"}
		],
		"duration": 2
	}`)

	p, err := UnmarshalProfile(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"Web Development"}, p.Goals)

	// Period buckets ordered numerically, not lexically.
	rm := p.Roadmaps["Web Development"]
	require.Len(t, rm, 3)
	assert.Equal(t, "Week 1", rm[0].Period)
	assert.Equal(t, "Week 2", rm[1].Period)
	assert.Equal(t, "Week 10", rm[2].Period)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript", "DOM", "Deployment"}, rm.Topics())

	// Boolean map reduced to completed topics in roadmap order.
	assert.Equal(t, []string{"HTML", "DOM"}, p.Completed["Web Development"])

	// Legacy single goal string becomes a one-element slice.
	require.Len(t, p.Logs, 1)
	assert.Equal(t, []string{"Web Development"}, p.Logs[0].Goals)

	// Scalar duration fans out to every goal.
	assert.Equal(t, 2.0, p.Durations["Web Development"])

	assert.Equal(t, CurrentSchemaVersion, p.SchemaVersion)
}

func TestUnmarshalProfileGlobalCompletedList(t *testing.T) {
	doc := []byte(`{
		"username": "bob",
		"goals": ["A", "B"],
		"roadmaps": {
			"A": ["Model Evaluation", "Regression"],
			"B": ["Model Evaluation", "SQL"]
		},
		"completedTopics": ["Model Evaluation", "SQL", "Unknown"]
	}`)

	p, err := UnmarshalProfile(doc)
	require.NoError(t, err)

	// A recurring topic name is credited to every goal whose roadmap has
	// it; topics outside any roadmap are dropped.
	assert.Equal(t, []string{"Model Evaluation"}, p.Completed["A"])
	assert.Equal(t, []string{"Model Evaluation", "SQL"}, p.Completed["B"])
}

func TestUnmarshalProfileMissingKeysGetDefaults(t *testing.T) {
	p, err := UnmarshalProfile([]byte(`{"username": "carol"}`))
	require.NoError(t, err)

	assert.NotNil(t, p.Goals)
	assert.NotNil(t, p.Roadmaps)
	assert.NotNil(t, p.Completed)
	assert.NotNil(t, p.Logs)
	assert.NotNil(t, p.Durations)
	assert.NotNil(t, p.Achievements)
}

func TestNormalizeDropsOrphanEntries(t *testing.T) {
	doc := []byte(`{
		"username": "dan",
		"goals": ["Kept"],
		"roadmaps": {"Kept": ["T1"], "Deleted": ["T2"]},
		"completed": {"Kept": ["T1"], "Deleted": ["T2"]},
		"durations": {"Kept": 1, "Deleted": 3}
	}`)

	p, err := UnmarshalProfile(doc)
	require.NoError(t, err)

	assert.Contains(t, p.Roadmaps, "Kept")
	assert.NotContains(t, p.Roadmaps, "Deleted")
	assert.NotContains(t, p.Completed, "Deleted")
	assert.NotContains(t, p.Durations, "Deleted")
}

func TestProfileRoundTrip(t *testing.T) {
	p := NewProfile("alice")
	p.PasswordHash = "$2a$10$hash"
	p.AddGoal("Web Development", Roadmap{
		{Period: "Week 1", Topics: []string{"HTML", "CSS"}},
		{Period: "Week 2", Topics: []string{"JavaScript"}},
	})
	p.MarkCompleted("Web Development", "HTML")
	p.AppendLog(LogEntry{Date: "2026-08-29", Goals: []string{"Web Development"}, Entry: "html!"})
	p.Durations["Web Development"] = 2.5
	p.Unlock("Starter")
	p.Notifications = true

	data, err := MarshalProfile(p)
	require.NoError(t, err)

	loaded, err := UnmarshalProfile(data)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	// A second round trip is byte-for-byte stable.
	data2, err := MarshalProfile(loaded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(data2))
}
