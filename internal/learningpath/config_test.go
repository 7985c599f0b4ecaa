package learningpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.8, cfg.AdvancementThreshold)
	assert.Equal(t, 0.8, cfg.StrengthThreshold)
	assert.Equal(t, 0.6, cfg.WeaknessThreshold)
	assert.Equal(t, 0.7, cfg.RecencyWeight)
	assert.Equal(t, 3, cfg.LessonsPerWeek)
	assert.Equal(t, 2, cfg.MaxWeakLessons)
	assert.Equal(t, 3, cfg.MaxRecommended)
	assert.Equal(t, 2, cfg.MaxRemedial)
	assert.Equal(t, 0.95, cfg.ExcellenceThreshold)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AdvancementThreshold = 1.2
	assert.ErrorContains(t, cfg.Validate(), "advancement_threshold")

	cfg = DefaultConfig()
	cfg.WeaknessThreshold = 0.9
	assert.ErrorContains(t, cfg.Validate(), "must not exceed")

	cfg = DefaultConfig()
	cfg.LessonsPerWeek = 0
	assert.ErrorContains(t, cfg.Validate(), "lessons_per_week")

	cfg = DefaultConfig()
	cfg.MaxRemedial = -1
	assert.ErrorContains(t, cfg.Validate(), "must not be negative")
}
