package problemgen

import "testing"

func TestAnswerFormat_Integer(t *testing.T) {
	v := &AnswerFormatValidator{}

	valid := []string{"42", "0", "-5", "1000"}
	for _, a := range valid {
		p := validProblem()
		p.Answer = a
		if err := v.Validate(p); err != nil {
			t.Errorf("expected %q to be valid integer, got: %v", a, err)
		}
	}

	invalid := []string{"3.5", "abc", "007", "+4"}
	for _, a := range invalid {
		p := validProblem()
		p.Answer = a
		if err := v.Validate(p); err == nil {
			t.Errorf("expected %q to be invalid integer", a)
		}
	}
}

func TestAnswerFormat_Fraction(t *testing.T) {
	v := &AnswerFormatValidator{}

	valid := []string{"3/4", "-1/2", "5/6", "1/1", "7/2"}
	for _, a := range valid {
		p := validProblem()
		p.Answer = a
		if err := v.Validate(p); err != nil {
			t.Errorf("expected %q to be valid fraction, got: %v", a, err)
		}
	}

	invalid := []string{"2/4", "3/0", "1 / 2", "a/b", "6/3"}
	for _, a := range invalid {
		p := validProblem()
		p.Answer = a
		if err := v.Validate(p); err == nil {
			t.Errorf("expected %q to be invalid fraction", a)
		}
	}
}
