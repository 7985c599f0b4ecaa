package problemgen

import (
	"testing"

	"github.com/abhisek/mathpath/internal/curriculum"
)

func TestCheckAgainst_Integer(t *testing.T) {
	p := curriculum.Problem{Answer: "42"}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"84/2", true},
		{"43", false},
		{"", false},
		{"abc", false},
	}

	for _, tc := range tests {
		if got := CheckAgainst(p, tc.input); got != tc.want {
			t.Errorf("CheckAgainst(42, %q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAgainst_Fraction(t *testing.T) {
	p := curriculum.Problem{Answer: "1/2"}

	tests := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"2/4", true},
		{"3/6", true},
		{" 1/2 ", true},
		{"-1/-2", true},
		{"1/3", false},
		{"1/0", false},
		{"0.5", false},
	}

	for _, tc := range tests {
		if got := CheckAgainst(p, tc.input); got != tc.want {
			t.Errorf("CheckAgainst(1/2, %q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAgainst_WholeFraction(t *testing.T) {
	p := curriculum.Problem{Answer: "2/1"}
	if !CheckAgainst(p, "2") {
		t.Error("expected 2 to match 2/1")
	}
	if CheckAgainst(p, "1/2") {
		t.Error("expected 1/2 not to match 2/1")
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		typ  AnswerType
		want string
	}{
		{"007", AnswerTypeInteger, "7"},
		{"-3", AnswerTypeInteger, "-3"},
		{"4/8", AnswerTypeFraction, "1/2"},
		{"3/-6", AnswerTypeFraction, "-1/2"},
		{"5", AnswerTypeFraction, "5/1"},
	}
	for _, tc := range tests {
		got, err := normalizeAnswer(tc.in, tc.typ)
		if err != nil {
			t.Errorf("normalizeAnswer(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("normalizeAnswer(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := normalizeAnswer("1/0", AnswerTypeFraction); err == nil {
		t.Error("expected error for zero denominator")
	}
}
