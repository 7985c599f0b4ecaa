package problemgen

import "github.com/abhisek/mathpath/internal/curriculum"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *curriculum.Problem) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	switch {
	case p.ID == "":
		return fail("id is empty")
	case p.Question == "":
		return fail("question is empty")
	case len(p.Question) > 500:
		return fail("question exceeds 500 characters")
	case p.Answer == "":
		return fail("answer is empty")
	case len(p.SolutionSteps) == 0:
		return fail("solution_steps is empty")
	case len(p.Hints) == 0:
		return fail("hints is empty")
	case len(p.Explanation) > 1000:
		return fail("explanation exceeds 1000 characters")
	case !p.Topic.Valid():
		return fail("topic is not part of the taxonomy")
	case !p.GradeLevel.Valid():
		return fail("grade_level is not a known grade")
	case p.Difficulty.Index() == 0:
		return fail("difficulty is not a known level")
	}
	return nil
}
