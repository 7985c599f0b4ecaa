package learningpath

import (
	"slices"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// Classification buckets assessed topics by score. Each bucket lists topics
// in ascending key order of the assessment map.
type Classification struct {
	Strengths  []curriculum.MathTopic
	Weaknesses []curriculum.MathTopic
	Neutral    []curriculum.MathTopic
	// Unknown holds assessment keys that do not name a topic.
	Unknown []string
}

// IsStrength reports whether t was classified as a strength.
func (c Classification) IsStrength(t curriculum.MathTopic) bool {
	return slices.Contains(c.Strengths, t)
}

// IsWeakness reports whether t was classified as a weakness.
func (c Classification) IsWeakness(t curriculum.MathTopic) bool {
	return slices.Contains(c.Weaknesses, t)
}

// Classify splits assessment results into strengths, weaknesses and neutral
// topics. Unknown keys are logged and skipped.
func (e *Engine) Classify(results map[string]float64) Classification {
	var c Classification
	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		topic, err := curriculum.ParseTopic(k)
		if err != nil {
			e.logger.Warn("skipping unknown topic in assessment", "topic", k)
			c.Unknown = append(c.Unknown, k)
			continue
		}
		switch score := results[k]; {
		case score >= e.cfg.StrengthThreshold:
			c.Strengths = append(c.Strengths, topic)
		case score < e.cfg.WeaknessThreshold:
			c.Weaknesses = append(c.Weaknesses, topic)
		default:
			c.Neutral = append(c.Neutral, topic)
		}
	}
	return c
}
