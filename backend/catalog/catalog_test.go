package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebDevelopmentRoadmap(t *testing.T) {
	rm := Roadmap("Web Development")
	topics := rm.Topics()

	assert.Len(t, topics, 12)
	assert.Contains(t, topics, "HTML")
	assert.Contains(t, topics, "Flexbox")
}

func TestRecurringTopicNames(t *testing.T) {
	// "Model Evaluation" appears in more than one roadmap, which is why
	// completion is tracked per goal rather than globally.
	assert.Contains(t, Roadmap("Machine Learning").Topics(), "Model Evaluation")
	assert.Contains(t, Roadmap("Data Science").Topics(), "Model Evaluation")
}

func TestUnknownGoalGetsStarterRoadmap(t *testing.T) {
	rm := Roadmap("Underwater Basket Weaving")
	assert.Equal(t, []string{"Introduction", "Core Concepts", "Project 1", "Advanced Topics"}, rm.Topics())
	assert.False(t, Has("Underwater Basket Weaving"))
}

func TestRoadmapReturnsCopies(t *testing.T) {
	rm := Roadmap("Python")
	rm[0].Topics[0] = "mutated"
	assert.Equal(t, "Syntax", Roadmap("Python")[0].Topics[0])
}

func TestRemaining(t *testing.T) {
	rest := Remaining([]string{"Python", "Web Development"})
	assert.Equal(t, []string{"Machine Learning", "Data Science", "DevOps"}, rest)
	assert.Len(t, Remaining(nil), len(Goals()))
}
