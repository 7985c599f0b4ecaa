package learningpath

import (
	"errors"
	"fmt"
)

// Config holds the path policy constants.
type Config struct {
	// AdvancementThreshold is the minimum lesson performance needed to move
	// on, and the mastery level below which a topic is struggling.
	AdvancementThreshold float64 `mapstructure:"advancement_threshold"`

	// StrengthThreshold and WeaknessThreshold bucket assessment scores:
	// score >= strength is a strength, score < weakness is a weakness.
	StrengthThreshold float64 `mapstructure:"strength_threshold"`
	WeaknessThreshold float64 `mapstructure:"weakness_threshold"`

	// RecencyWeight is the weight of a new observation in the mastery blend.
	RecencyWeight float64 `mapstructure:"recency_weight"`

	LessonsPerWeek int `mapstructure:"lessons_per_week"`
	MaxWeakLessons int `mapstructure:"max_weak_lessons"`
	MaxRecommended int `mapstructure:"max_recommended"`
	MaxRemedial    int `mapstructure:"max_remedial"`

	// ExcellenceThreshold is the mastery above which a topic counts toward
	// acceleration.
	ExcellenceThreshold float64 `mapstructure:"excellence_threshold"`

	// SuccessTarget is the predicted success rate RecommendDifficulty aims for.
	SuccessTarget float64 `mapstructure:"success_target"`
}

// DefaultConfig returns the standard policy.
func DefaultConfig() Config {
	return Config{
		AdvancementThreshold: 0.8,
		StrengthThreshold:    0.8,
		WeaknessThreshold:    0.6,
		RecencyWeight:        0.7,
		LessonsPerWeek:       3,
		MaxWeakLessons:       2,
		MaxRecommended:       3,
		MaxRemedial:          2,
		ExcellenceThreshold:  0.95,
		SuccessTarget:        0.7,
	}
}

// Validate checks that thresholds are probabilities and counts are positive.
func (c Config) Validate() error {
	var errs []error
	probs := []struct {
		name string
		v    float64
	}{
		{"advancement_threshold", c.AdvancementThreshold},
		{"strength_threshold", c.StrengthThreshold},
		{"weakness_threshold", c.WeaknessThreshold},
		{"recency_weight", c.RecencyWeight},
		{"excellence_threshold", c.ExcellenceThreshold},
		{"success_target", c.SuccessTarget},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", p.name, p.v))
		}
	}
	if c.WeaknessThreshold > c.StrengthThreshold {
		errs = append(errs, fmt.Errorf("weakness_threshold (%v) must not exceed strength_threshold (%v)", c.WeaknessThreshold, c.StrengthThreshold))
	}
	if c.LessonsPerWeek <= 0 {
		errs = append(errs, fmt.Errorf("lessons_per_week must be positive, got %d", c.LessonsPerWeek))
	}
	if c.MaxWeakLessons < 0 || c.MaxRecommended < 0 || c.MaxRemedial < 0 {
		errs = append(errs, errors.New("lesson and topic limits must not be negative"))
	}
	return errors.Join(errs...)
}
