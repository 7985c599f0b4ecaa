package problemgen

import (
	"strings"
	"testing"

	"github.com/abhisek/mathpath/internal/curriculum"
)

func validProblem() *curriculum.Problem {
	return &curriculum.Problem{
		ID:            "prob_basic_addition_1a2b3c4d",
		Topic:         curriculum.TopicBasicAddition,
		GradeLevel:    curriculum.Grade3,
		Difficulty:    curriculum.Expert,
		Question:      "What is 345 + 278?",
		Answer:        "623",
		SolutionSteps: []string{"345 + 278 = 623"},
		Hints:         []string{"Try adding column by column."},
		Explanation:   "Addition combines two numbers. 345 plus 278 equals 623.",
	}
}

func TestStructural_ValidProblem(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validProblem()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *curriculum.Problem)
		want   string
	}{
		{"empty id", func(p *curriculum.Problem) { p.ID = "" }, "id is empty"},
		{"empty question", func(p *curriculum.Problem) { p.Question = "" }, "question is empty"},
		{"long question", func(p *curriculum.Problem) { p.Question = strings.Repeat("a", 501) }, "exceeds 500"},
		{"empty answer", func(p *curriculum.Problem) { p.Answer = "" }, "answer is empty"},
		{"no steps", func(p *curriculum.Problem) { p.SolutionSteps = nil }, "solution_steps"},
		{"no hints", func(p *curriculum.Problem) { p.Hints = []string{} }, "hints"},
		{"long explanation", func(p *curriculum.Problem) { p.Explanation = strings.Repeat("a", 1001) }, "exceeds 1000"},
		{"bad topic", func(p *curriculum.Problem) { p.Topic = "alchemy" }, "topic"},
		{"bad grade", func(p *curriculum.Problem) { p.GradeLevel = "13" }, "grade_level"},
		{"bad difficulty", func(p *curriculum.Problem) { p.Difficulty = "legendary" }, "difficulty"},
	}

	v := &StructuralValidator{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProblem()
			tc.mutate(p)
			err := v.Validate(p)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Validator != "structural" {
				t.Errorf("expected validator %q, got %q", "structural", err.Validator)
			}
			if !strings.Contains(err.Message, tc.want) {
				t.Errorf("message %q does not mention %q", err.Message, tc.want)
			}
		})
	}
}

func TestStructural_EmptyExplanationAllowed(t *testing.T) {
	p := validProblem()
	p.Explanation = ""
	if err := (&StructuralValidator{}).Validate(p); err != nil {
		t.Errorf("explanation is optional, got %v", err)
	}
}
