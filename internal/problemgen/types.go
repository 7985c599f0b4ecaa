package problemgen

import (
	"strings"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// AnswerType describes the numeric representation of an answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623", "-15"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "7/2"
)

// answerTypeOf infers the answer type from the canonical answer text.
func answerTypeOf(answer string) AnswerType {
	if strings.Contains(answer, "/") {
		return AnswerTypeFraction
	}
	return AnswerTypeInteger
}

// Synthesis is the topic-specific part of a generated problem. The engine
// adds identity, topic, grade and difficulty.
type Synthesis struct {
	Question    string
	Answer      string
	Steps       []string
	Hints       []string
	Explanation string
}

// Synthesizer produces a problem body for one difficulty level.
// Implementations must only draw randomness from r.
type Synthesizer func(r Rand, d curriculum.DifficultyLevel) Synthesis

// Rand is the subset of *rand.Rand the synthesizers use.
type Rand interface {
	IntN(n int) int
}

// between returns a uniform integer in [lo, hi].
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// CheckResult is the outcome of checking a submitted answer.
type CheckResult struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
	Hint     string `json:"hint,omitempty"`
	NextStep string `json:"next_step,omitempty"`
}
