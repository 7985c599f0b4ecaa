package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/abhisek/mathpath/internal/curriculum"
)

var fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)

// AnswerFormatValidator checks that the canonical answer is already in its
// normalized form: an integer without padding, or a fraction in lowest
// terms with a positive denominator.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(p *curriculum.Problem) *ValidationError {
	typ := answerTypeOf(p.Answer)
	check := validateInteger
	if typ == AnswerTypeFraction {
		check = validateFraction
	}
	if err := check(p.Answer); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("invalid %s answer %q: %s", typ, p.Answer, err),
		}
	}
	return nil
}

func validateInteger(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.New("not a valid integer")
	}
	if strconv.FormatInt(n, 10) != s {
		return errors.New("not in canonical form")
	}
	return nil
}

func validateFraction(s string) error {
	if !fractionPattern.MatchString(s) {
		return errors.New("does not match fraction pattern a/b")
	}
	r, err := parseRational(s)
	if err != nil {
		return err
	}
	if r.String() != s {
		return errors.New("fraction is not in lowest terms")
	}
	return nil
}
