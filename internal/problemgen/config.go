package problemgen

import "github.com/abhisek/mathpath/internal/curriculum"

// Config controls the behavior of the Engine.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated problem. They execute in order; the first failure
	// stops the pipeline and is logged as a generator defect.
	Validators []Validator

	// PracticeGrade is the grade stamped on practice-set problems.
	PracticeGrade curriculum.GradeLevel

	// Fallback generates problems for topics without a dedicated synthesizer.
	Fallback Synthesizer
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MathCheckValidator{},
		},
		PracticeGrade: curriculum.Grade5,
		Fallback:      synthAddition,
	}
}
