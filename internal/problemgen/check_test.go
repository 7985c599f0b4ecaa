package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/mathpath/internal/curriculum"
)

func TestCheck_FormatValidity(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		answer string
		want   bool
	}{
		{"12", true},
		{" 12 ", true},
		{"-7", true},
		{"3/4", true},
		{"-3/4", true},
		{"3/-4", false},
		{"1.5", false},
		{"twelve", false},
		{"", false},
		{"1/2/3", false},
	}

	for _, tc := range tests {
		res := e.Check("prob_x", tc.answer, false)
		if res.Correct != tc.want {
			t.Errorf("Check(%q).Correct = %v, want %v", tc.answer, res.Correct, tc.want)
		}
		if res.Hint != "" || res.NextStep != "" {
			t.Errorf("Check(%q) without steps should not attach hint or next step", tc.answer)
		}
	}
}

func TestCheck_Feedback(t *testing.T) {
	e := New(DefaultConfig())

	ok := e.Check("prob_x", "42", true)
	assert.True(t, ok.Correct)
	assert.Equal(t, "Great job! That's correct!", ok.Feedback)
	assert.Empty(t, ok.Hint)
	assert.Empty(t, ok.NextStep)

	bad := e.Check("prob_x", "forty-two", true)
	assert.False(t, bad.Correct)
	assert.Equal(t, "Not quite. Try again! You can do it!", bad.Feedback)
	assert.Equal(t, "Remember to check your work step by step", bad.Hint)
	assert.Equal(t, "Try breaking down the problem into smaller parts", bad.NextStep)
}

func TestCheck_WellFormedWrongAnswerIsAccepted(t *testing.T) {
	e := New(DefaultConfig())
	p := e.GenerateFor("basic_addition", "beginner", "1")

	// Check only looks at the shape of the answer.
	res := e.Check(p.ID, "999999", false)
	assert.True(t, res.Correct)
	assert.False(t, CheckAgainst(p, "999999"))
}

func TestCheckProblem(t *testing.T) {
	e := New(DefaultConfig())
	p := curriculum.Problem{
		ID:       "prob_fractions_1",
		Question: "Add the fractions: 1/4 + 1/4",
		Answer:   "1/2",
		Hints:    []string{"Find a common denominator"},
	}

	ok := e.CheckProblem(p, " 2/4 ", true)
	assert.True(t, ok.Correct)
	assert.Equal(t, feedbackCorrect, ok.Feedback)
	assert.Empty(t, ok.Hint)

	wrong := e.CheckProblem(p, "3/4", true)
	assert.False(t, wrong.Correct)
	assert.Equal(t, feedbackIncorrect, wrong.Feedback)
	assert.Equal(t, "Find a common denominator", wrong.Hint)
	assert.Equal(t, nextStepBreakDown, wrong.NextStep)

	p.Hints = nil
	malformed := e.CheckProblem(p, "0.5", true)
	assert.False(t, malformed.Correct)
	assert.Equal(t, hintCheckWork, malformed.Hint)

	quiet := e.CheckProblem(p, "3/4", false)
	assert.Empty(t, quiet.Hint)
	assert.Empty(t, quiet.NextStep)
}
