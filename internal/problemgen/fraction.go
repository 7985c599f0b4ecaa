package problemgen

import "fmt"

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 if either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a) / GCD(a, b) * abs(b)
}

// Reduce returns n/d in lowest terms with a positive denominator.
// Reducing an already reduced fraction returns it unchanged.
func Reduce(n, d int) (int, int) {
	if d == 0 {
		return n, d
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := GCD(n, d); g > 1 {
		n, d = n/g, d/g
	}
	return n, d
}

// FormatFraction renders n/d as "n/d". It does not reduce.
func FormatFraction(n, d int) string {
	return fmt.Sprintf("%d/%d", n, d)
}

// formatQuotient renders n/d reduced, as an integer when the
// denominator reduces to 1.
func formatQuotient(n, d int) string {
	n, d = Reduce(n, d)
	if d == 1 {
		return fmt.Sprint(n)
	}
	return FormatFraction(n, d)
}

func abs[T ~int | ~int64](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
