package tracker

import (
	"strings"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// trailingPunct is the set of punctuation stripped from the end of each
// token before matching.
const trailingPunct = `.,!?;:)("'`

// DetectTopics returns the subset of topics mentioned in the text, in topic
// order. Matching is case-insensitive on whole whitespace-separated tokens
// with trailing punctuation stripped. A multi-word topic name therefore
// never matches as a phrase; only its accidental collision with a
// single-word key could. That limitation is intentional and load-bearing
// for the tests.
func DetectTopics(text string, topics []string) []string {
	tokens := map[string]struct{}{}
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.TrimRight(tok, trailingPunct)
		if tok != "" {
			tokens[tok] = struct{}{}
		}
	}

	var matched []string
	for _, topic := range topics {
		if _, ok := tokens[strings.ToLower(topic)]; ok {
			matched = append(matched, topic)
		}
	}
	return matched
}

// DetectAndComplete runs detection against the goal's roadmap and marks any
// matches complete. Returns only the newly completed topics; re-mentioning
// an already completed topic is a no-op.
func DetectAndComplete(p *models.Profile, goal, text string) []string {
	var newlyCompleted []string
	for _, topic := range DetectTopics(text, p.Roadmaps[goal].Topics()) {
		if p.MarkCompleted(goal, topic) {
			newlyCompleted = append(newlyCompleted, topic)
		}
	}
	return newlyCompleted
}
