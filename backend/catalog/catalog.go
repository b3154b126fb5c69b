// Package catalog holds the fixed goal → roadmap catalog. Roadmaps are
// grouped into weekly buckets; topic names recur across goals (e.g. "Model
// Evaluation"), which is why completion is tracked per goal.
package catalog

import "github.com/Bhuvantej123/skilltrack-bot/backend/models"

var roadmaps = map[string]models.Roadmap{
	"Web Development": {
		{Period: "Week 1", Topics: []string{"HTML", "CSS", "Flexbox"}},
		{Period: "Week 2", Topics: []string{"JavaScript", "DOM", "Git"}},
		{Period: "Week 3", Topics: []string{"React", "APIs", "Databases"}},
		{Period: "Week 4", Topics: []string{"Testing", "Deployment", "Portfolio"}},
	},
	"Machine Learning": {
		{Period: "Week 1", Topics: []string{"Python", "Statistics", "NumPy"}},
		{Period: "Week 2", Topics: []string{"Pandas", "Visualization", "Regression"}},
		{Period: "Week 3", Topics: []string{"Classification", "Clustering", "Decision Trees"}},
		{Period: "Week 4", Topics: []string{"Model Evaluation", "Neural Networks", "Capstone"}},
	},
	"Data Science": {
		{Period: "Week 1", Topics: []string{"Python", "SQL", "Statistics"}},
		{Period: "Week 2", Topics: []string{"Pandas", "Cleaning", "Visualization"}},
		{Period: "Week 3", Topics: []string{"Hypothesis Testing", "Regression", "Model Evaluation"}},
		{Period: "Week 4", Topics: []string{"Dashboards", "Storytelling", "Capstone"}},
	},
	"Python": {
		{Period: "Week 1", Topics: []string{"Syntax", "Variables", "Functions"}},
		{Period: "Week 2", Topics: []string{"Lists", "Dictionaries", "Comprehensions"}},
		{Period: "Week 3", Topics: []string{"Classes", "Modules", "Exceptions"}},
		{Period: "Week 4", Topics: []string{"Files", "Testing", "Packaging"}},
	},
	"DevOps": {
		{Period: "Week 1", Topics: []string{"Linux", "Shell", "Networking"}},
		{Period: "Week 2", Topics: []string{"Git", "CI", "CD"}},
		{Period: "Week 3", Topics: []string{"Docker", "Kubernetes", "Terraform"}},
		{Period: "Week 4", Topics: []string{"Monitoring", "Logging", "Incident Response"}},
	},
}

// starterTopics seeds the roadmap for a custom goal the catalog does not
// know, matching the original app's default subtopics.
var starterTopics = []string{"Introduction", "Core Concepts", "Project 1", "Advanced Topics"}

// ordered display order of catalog goals.
var ordered = []string{
	"Web Development",
	"Machine Learning",
	"Data Science",
	"Python",
	"DevOps",
}

// Goals returns the catalog goal names in display order.
func Goals() []string {
	return append([]string{}, ordered...)
}

// Has reports whether the goal is a known catalog goal.
func Has(goal string) bool {
	_, ok := roadmaps[goal]
	return ok
}

// Roadmap returns a copy of the roadmap for a goal. Unknown goals get the
// starter roadmap so custom goals are still usable.
func Roadmap(goal string) models.Roadmap {
	rm, ok := roadmaps[goal]
	if !ok {
		return models.FlatRoadmap(starterTopics)
	}
	out := make(models.Roadmap, len(rm))
	for i, s := range rm {
		out[i] = models.RoadmapSection{
			Period: s.Period,
			Topics: append([]string{}, s.Topics...),
		}
	}
	return out
}

// Remaining returns catalog goals not present in the given selection, for
// the "suggest next path" prompt.
func Remaining(selected []string) []string {
	have := map[string]struct{}{}
	for _, g := range selected {
		have[g] = struct{}{}
	}
	var rest []string
	for _, g := range ordered {
		if _, ok := have[g]; !ok {
			rest = append(rest, g)
		}
	}
	return rest
}
