package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathpath/internal/curriculum"
)

var errZeroDenominator = errors.New("zero denominator")

// rational is a value in lowest terms with a positive denominator.
type rational struct {
	num, den int64
}

// parseRational accepts "n" or "n/d", with surrounding whitespace.
func parseRational(s string) (rational, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return rational{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		return rational{num: n, den: 1}, nil
	}

	num, den, err := parseFraction(s)
	if err != nil {
		return rational{}, err
	}
	if den == 0 {
		return rational{}, errZeroDenominator
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd64(abs(num), den)
	return rational{num: num / g, den: den / g}, nil
}

func (r rational) String() string {
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

// CheckAgainst reports whether answer has the same value as the problem's
// canonical answer. "2/4" matches "1/2", "2" matches "4/2", "007" matches "7".
func CheckAgainst(problem curriculum.Problem, answer string) bool {
	if strings.TrimSpace(answer) == "" {
		return false
	}
	got, err := parseRational(answer)
	if err != nil {
		return false
	}
	want, err := parseRational(problem.Answer)
	if err != nil {
		return false
	}
	return got == want
}

// normalizeAnswer returns the canonical text of answer: a plain integer for
// the integer type, "n/d" in lowest terms for the fraction type.
func normalizeAnswer(answer string, answerType AnswerType) (string, error) {
	if answerType == AnswerTypeInteger {
		n, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil
	}
	r, err := parseRational(answer)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// parseFraction splits "a/b" into its parts without reducing.
func parseFraction(s string) (int64, int64, error) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
