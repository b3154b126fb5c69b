package models

// Roadmap is the ordered topic plan for one goal, optionally grouped into
// named periods ("Week 1", "Week 2", ...). An ungrouped roadmap is a single
// section with an empty period name.
type Roadmap []RoadmapSection

// RoadmapSection is one period bucket of a roadmap.
type RoadmapSection struct {
	Period string   `json:"period,omitempty"`
	Topics []string `json:"topics"`
}

// Topics flattens the roadmap into its ordered topic list.
func (r Roadmap) Topics() []string {
	var topics []string
	for _, s := range r {
		topics = append(topics, s.Topics...)
	}
	return topics
}

// HasTopic reports whether the topic appears anywhere in the roadmap.
func (r Roadmap) HasTopic(topic string) bool {
	for _, s := range r {
		for _, t := range s.Topics {
			if t == topic {
				return true
			}
		}
	}
	return false
}

// FlatRoadmap builds a single-section roadmap from a plain topic list.
func FlatRoadmap(topics []string) Roadmap {
	return Roadmap{{Topics: append([]string{}, topics...)}}
}
