package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// MathCheckValidator independently recomputes the answer from the question
// text. Questions it cannot parse pass through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *curriculum.Problem) *ValidationError {
	answerType := answerTypeOf(p.Answer)
	computed, err := computeAnswer(p.Question, answerType)
	if err != nil {
		// Not computable (word problem, comparison, etc.).
		return nil
	}
	if !answersEqual(computed, p.Answer, answerType) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but problem claims %q", computed, p.Answer),
		}
	}
	return nil
}

// Regex patterns for extracting arithmetic expressions from question text.
var (
	// Fraction arithmetic: "a/b + c/d", "a/b - c/d", "a/b * c/d", "a/b ÷ c/d"
	fractionArithRe = regexp.MustCompile(`(-?\d+)\s*/\s*(\d+)\s*([+\-*×÷])\s*(-?\d+)\s*/\s*(\d+)`)

	// "Simplify the fraction a/b"
	simplifyRe = regexp.MustCompile(`(?i)simplify the fraction (-?\d+)\s*/\s*(\d+)`)

	// Linear equations: "x + a = b" and "ax = b"
	linearAddRe = regexp.MustCompile(`x\s*\+\s*(-?\d+)\s*=\s*(-?\d+)`)
	linearMulRe = regexp.MustCompile(`(-?\d+)\s*x\s*=\s*(-?\d+)`)

	// Integer arithmetic with +, -, *, ×
	intArithRe = regexp.MustCompile(`(?:^|[^\d/])(-?\d+)\s*([+\-*×])\s*(-?\d+)(?:[^\d/]|$)`)

	// Division requires spaces around the operator to distinguish from fractions (3/4 vs 144 / 12).
	intDivRe = regexp.MustCompile(`(-?\d+)\s+[/÷]\s+(-?\d+)`)
)

// computeAnswer attempts to extract and compute the answer from question text.
// Returns the computed answer as a string, or an error if not computable.
func computeAnswer(text string, answerType AnswerType) (string, error) {
	if result, err := tryLinear(text); err == nil {
		return result, nil
	}
	if result, err := trySimplify(text); err == nil {
		return result, nil
	}
	if result, err := tryFractionArith(text); err == nil {
		return result, nil
	}
	if answerType == AnswerTypeInteger {
		if result, err := tryIntArith(text); err == nil {
			return result, nil
		}
	}
	return "", fmt.Errorf("not computable")
}

// tryLinear solves "x + a = b" or "ax = b" for x.
func tryLinear(text string) (string, error) {
	if m := linearAddRe.FindStringSubmatch(text); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		return strconv.Itoa(b - a), nil
	}
	if m := linearMulRe.FindStringSubmatch(text); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if a == 0 {
			return "", fmt.Errorf("zero coefficient")
		}
		return formatQuotient(b, a), nil
	}
	return "", fmt.Errorf("no linear equation found")
}

func trySimplify(text string) (string, error) {
	m := simplifyRe.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("no simplification found")
	}
	n, _ := strconv.Atoi(m[1])
	d, _ := strconv.Atoi(m[2])
	if d == 0 {
		return "", fmt.Errorf("zero denominator")
	}
	return FormatFraction(Reduce(n, d)), nil
}

// tryFractionArith tries to extract and compute fraction arithmetic.
func tryFractionArith(text string) (string, error) {
	matches := fractionArithRe.FindStringSubmatch(text)
	if matches == nil {
		return "", fmt.Errorf("no fraction expression found")
	}

	aN, _ := strconv.Atoi(matches[1])
	aD, _ := strconv.Atoi(matches[2])
	op := normalizeOp(matches[3])
	bN, _ := strconv.Atoi(matches[4])
	bD, _ := strconv.Atoi(matches[5])

	if aD == 0 || bD == 0 {
		return "", fmt.Errorf("zero denominator")
	}

	var rN, rD int
	switch op {
	case "+":
		rN = aN*bD + bN*aD
		rD = aD * bD
	case "-":
		rN = aN*bD - bN*aD
		rD = aD * bD
	case "*":
		rN = aN * bN
		rD = aD * bD
	case "/":
		if bN == 0 {
			return "", fmt.Errorf("division by zero")
		}
		rN = aN * bD
		rD = aD * bN
	default:
		return "", fmt.Errorf("unsupported operator: %s", op)
	}

	return formatQuotient(rN, rD), nil
}

// tryIntArith tries to extract and compute integer arithmetic.
func tryIntArith(text string) (string, error) {
	if m := intArithRe.FindStringSubmatch(text); m != nil {
		return computeIntOp(m[1], normalizeOp(m[2]), m[3])
	}
	// Division requires spaces around the operator to avoid matching fractions.
	if m := intDivRe.FindStringSubmatch(text); m != nil {
		return computeIntOp(m[1], "/", m[2])
	}
	return "", fmt.Errorf("no arithmetic expression found")
}

// computeIntOp evaluates a binary arithmetic operation on two integer strings.
// Division that does not come out even is reported as a reduced fraction.
func computeIntOp(aStr, op, bStr string) (string, error) {
	a, err := strconv.Atoi(aStr)
	if err != nil {
		return "", err
	}
	b, err := strconv.Atoi(bStr)
	if err != nil {
		return "", err
	}

	switch op {
	case "+":
		return strconv.Itoa(a + b), nil
	case "-":
		return strconv.Itoa(a - b), nil
	case "*":
		return strconv.Itoa(a * b), nil
	case "/":
		if b == 0 {
			return "", fmt.Errorf("division by zero")
		}
		return formatQuotient(a, b), nil
	default:
		return "", fmt.Errorf("unsupported operator: %s", op)
	}
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}

// answersEqual compares two answer strings for equality, with normalization.
func answersEqual(a, b string, answerType AnswerType) bool {
	na, err := normalizeAnswer(a, answerType)
	if err != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	nb, err := normalizeAnswer(b, answerType)
	if err != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return na == nb
}
