package problemgen

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// Engine synthesizes practice problems and grades answers.
//
// An Engine is not safe for concurrent use when it owns its random source;
// give each goroutine its own Engine or inject a locked source.
type Engine struct {
	cfg          Config
	synthesizers map[curriculum.MathTopic]Synthesizer
	rng          Rand
	newID        func() string
	logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source. Tests pass a seeded source for
// reproducible problems.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger used for defect and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithIDFunc replaces the random suffix generator used in problem ids.
func WithIDFunc(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// WithSynthesizer registers or replaces the synthesizer for a topic.
func WithSynthesizer(topic curriculum.MathTopic, s Synthesizer) Option {
	return func(e *Engine) { e.synthesizers[topic] = s }
}

// New creates an Engine with the given config.
func New(cfg Config, opts ...Option) *Engine {
	if cfg.Fallback == nil {
		cfg.Fallback = synthAddition
	}
	if cfg.PracticeGrade == "" {
		cfg.PracticeGrade = curriculum.Grade5
	}
	seed := uint64(time.Now().UnixNano())
	e := &Engine{
		cfg:          cfg,
		synthesizers: defaultSynthesizers(),
		rng:          rand.New(rand.NewPCG(seed, seed>>1)),
		newID:        shortID,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// shortID returns the first eight hex digits of a random UUID.
func shortID() string {
	return uuid.NewString()[:8]
}

// Generate parses the caller's topic, difficulty (1-4) and grade, then
// synthesizes a problem. Parse failures wrap curriculum.ErrInvalidTopic,
// curriculum.ErrInvalidDifficulty or curriculum.ErrInvalidGrade.
func (e *Engine) Generate(topic string, difficulty int, grade string) (curriculum.Problem, error) {
	t, err := curriculum.ParseTopic(topic)
	if err != nil {
		return curriculum.Problem{}, fmt.Errorf("generate problem: %w", err)
	}
	d, err := curriculum.DifficultyFromIndex(difficulty)
	if err != nil {
		return curriculum.Problem{}, fmt.Errorf("generate problem: %w", err)
	}
	g, err := curriculum.ParseGrade(grade)
	if err != nil {
		return curriculum.Problem{}, fmt.Errorf("generate problem: %w", err)
	}
	return e.GenerateFor(t, d, g), nil
}

// GenerateFor synthesizes a problem for already-validated inputs.
func (e *Engine) GenerateFor(topic curriculum.MathTopic, difficulty curriculum.DifficultyLevel, grade curriculum.GradeLevel) curriculum.Problem {
	return e.build("prob", topic, difficulty, grade)
}

// GeneratePracticeSet returns count independently generated problems.
// Problems in a set may repeat.
func (e *Engine) GeneratePracticeSet(topic curriculum.MathTopic, count int, difficulty curriculum.DifficultyLevel) []curriculum.Problem {
	if count <= 0 {
		return nil
	}
	set := make([]curriculum.Problem, 0, count)
	for range count {
		set = append(set, e.build("practice", topic, difficulty, e.cfg.PracticeGrade))
	}
	return set
}

func (e *Engine) build(prefix string, topic curriculum.MathTopic, difficulty curriculum.DifficultyLevel, grade curriculum.GradeLevel) curriculum.Problem {
	synth, ok := e.synthesizers[topic]
	if !ok {
		synth = e.cfg.Fallback
	}
	s := synth(e.rng, difficulty)

	p := curriculum.Problem{
		ID:            prefix + "_" + string(topic) + "_" + e.newID(),
		Topic:         topic,
		GradeLevel:    grade,
		Difficulty:    difficulty,
		Question:      s.Question,
		Answer:        s.Answer,
		SolutionSteps: s.Steps,
		Hints:         s.Hints,
		Explanation:   s.Explanation,
	}

	if verr := runValidators(e.cfg.Validators, &p); verr != nil {
		e.logger.Error("generated problem failed validation",
			"problem_id", p.ID,
			"topic", string(topic),
			"difficulty", string(difficulty),
			"question", p.Question,
			"answer", p.Answer,
			"validator", verr.Validator,
			"error", verr.Message,
		)
	} else {
		e.logger.Debug("problem generated",
			"problem_id", p.ID,
			"topic", string(topic),
			"difficulty", difficulty.Index(),
		)
	}
	return p
}
