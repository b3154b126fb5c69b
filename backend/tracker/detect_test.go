package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

func TestDetectTopics(t *testing.T) {
	topics := []string{"HTML", "CSS", "Flexbox", "Decision Trees"}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "exact word match",
			text: "Today I learned HTML and Flexbox",
			want: []string{"HTML", "Flexbox"},
		},
		{
			name: "case insensitive",
			text: "spent an hour on css",
			want: []string{"CSS"},
		},
		{
			name: "trailing punctuation stripped",
			text: "Finished HTML! Then some CSS.",
			want: []string{"HTML", "CSS"},
		},
		{
			name: "multi-word topic never matches as phrase",
			text: "I studied Decision Trees today",
			want: nil,
		},
		{
			name: "constituent word alone does not match multi-word topic",
			text: "I studied Trees today",
			want: nil,
		},
		{
			name: "substring of a token does not match",
			text: "I wrote some HTMLy markup",
			want: nil,
		},
		{
			name: "empty text",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTopics(tt.text, topics))
		})
	}
}

func TestDetectAndCompleteIdempotent(t *testing.T) {
	p := models.NewProfile("alice")
	p.AddGoal("Web Development", models.FlatRoadmap([]string{"HTML", "CSS", "Flexbox"}))

	first := DetectAndComplete(p, "Web Development", "learned HTML and flexbox today")
	assert.Equal(t, []string{"HTML", "Flexbox"}, first)
	assert.Equal(t, 2, len(p.Completed["Web Development"]))

	// Re-mentioning already completed topics adds nothing.
	second := DetectAndComplete(p, "Web Development", "learned HTML and flexbox today")
	assert.Empty(t, second)
	assert.Equal(t, 2, len(p.Completed["Web Development"]))
}

func TestDetectAndCompleteIgnoresTopicsOutsideRoadmap(t *testing.T) {
	p := models.NewProfile("bob")
	p.AddGoal("Python", models.FlatRoadmap([]string{"Syntax"}))

	got := DetectAndComplete(p, "Python", "did some HTML and Syntax work")
	assert.Equal(t, []string{"Syntax"}, got)
}
