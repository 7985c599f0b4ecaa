package problemgen

import (
	"fmt"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// Validator checks a generated problem for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "math-check", "answer-format".
	Name() string

	// Validate checks the problem and returns nil if it passes.
	Validate(p *curriculum.Problem) *ValidationError
}

// ValidationError describes why a problem failed validation. A failure on
// a synthesized problem is a generator defect, not a caller error.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators runs the chain in order and returns the first failure.
func runValidators(validators []Validator, p *curriculum.Problem) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}
