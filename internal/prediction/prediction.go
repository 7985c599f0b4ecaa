// Package prediction estimates how likely a student is to succeed on a
// topic at a given difficulty. Estimates only bias recommendations; no
// path decision depends on a predictor being available.
package prediction

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// NeutralScore is the estimate used when no prediction is available.
const NeutralScore = 0.5

// ErrUnavailable is returned by predictors that cannot produce an estimate.
var ErrUnavailable = errors.New("prediction unavailable")

// Profile is the student context a predictor sees.
type Profile struct {
	StudentID     string
	Grade         curriculum.GradeLevel
	LearningStyle curriculum.LearningStyle
	Mastery       map[curriculum.MathTopic]float64
}

// Predictor estimates a success probability in [0, 1].
type Predictor interface {
	Predict(ctx context.Context, profile Profile, topic curriculum.MathTopic, difficulty curriculum.DifficultyLevel) (float64, error)
}

// Neutral always predicts NeutralScore.
type Neutral struct{}

func (Neutral) Predict(context.Context, Profile, curriculum.MathTopic, curriculum.DifficultyLevel) (float64, error) {
	return NeutralScore, nil
}

// MasteryModel predicts from the student's mastery of the topic, lowering
// the estimate for each difficulty step above beginner.
type MasteryModel struct {
	// Bonus is added at beginner difficulty.
	Bonus float64
	// StepPenalty is subtracted per difficulty level above beginner.
	StepPenalty float64
}

// DefaultMasteryModel returns a MasteryModel with the standard weights.
func DefaultMasteryModel() MasteryModel {
	return MasteryModel{Bonus: 0.15, StepPenalty: 0.15}
}

func (m MasteryModel) Predict(ctx context.Context, profile Profile, topic curriculum.MathTopic, difficulty curriculum.DifficultyLevel) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	idx := difficulty.Index()
	if idx == 0 {
		return 0, &curriculum.InvalidEnumError{Kind: curriculum.ErrInvalidDifficulty, Value: string(difficulty)}
	}
	mastery, ok := profile.Mastery[topic]
	if !ok {
		return 0, ErrUnavailable
	}
	return clamp(mastery+m.Bonus-m.StepPenalty*float64(idx-1), 0, 1), nil
}

// Safe wraps p so that Predict never fails: a nil predictor, an error or a
// non-finite value all yield NeutralScore with a warning. Results are
// clamped to [0, 1].
func Safe(p Predictor, logger *slog.Logger) Predictor {
	if logger == nil {
		logger = slog.Default()
	}
	return &safePredictor{inner: p, logger: logger}
}

type safePredictor struct {
	inner  Predictor
	logger *slog.Logger
}

func (s *safePredictor) Predict(ctx context.Context, profile Profile, topic curriculum.MathTopic, difficulty curriculum.DifficultyLevel) (float64, error) {
	if s.inner == nil {
		return NeutralScore, nil
	}
	v, err := s.inner.Predict(ctx, profile, topic, difficulty)
	if err != nil {
		s.logger.Warn("prediction unavailable, using neutral estimate",
			"student_id", profile.StudentID,
			"topic", string(topic),
			"difficulty", string(difficulty),
			"error", err,
		)
		return NeutralScore, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		s.logger.Warn("prediction not finite, using neutral estimate",
			"student_id", profile.StudentID,
			"topic", string(topic),
		)
		return NeutralScore, nil
	}
	return clamp(v, 0, 1), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
