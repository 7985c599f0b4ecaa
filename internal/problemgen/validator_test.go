package problemgen

import (
	"testing"

	"github.com/abhisek/mathpath/internal/curriculum"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 3 {
		t.Fatalf("expected 3 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "answer-format", "math-check"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PracticeGrade != curriculum.Grade5 {
		t.Errorf("expected PracticeGrade 5, got %q", cfg.PracticeGrade)
	}
	if cfg.Fallback == nil {
		t.Error("expected a fallback synthesizer")
	}
}

type failingValidator struct{ name string }

func (v failingValidator) Name() string { return v.name }
func (v failingValidator) Validate(*curriculum.Problem) *ValidationError {
	return &ValidationError{Validator: v.name, Message: "always fails"}
}

func TestRunValidators_StopsAtFirstFailure(t *testing.T) {
	chain := []Validator{&StructuralValidator{}, failingValidator{"first"}, failingValidator{"second"}}
	err := runValidators(chain, validProblem())
	if err == nil {
		t.Fatal("expected failure")
	}
	if err.Validator != "first" {
		t.Errorf("expected first failing validator, got %q", err.Validator)
	}

	if err := runValidators(nil, validProblem()); err != nil {
		t.Errorf("empty chain should pass, got %v", err)
	}
}
