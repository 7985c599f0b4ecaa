package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 1, GCD(7, 3))
	assert.Equal(t, 5, GCD(-10, 15))
	assert.Equal(t, 4, GCD(0, 4))
	assert.Equal(t, 0, GCD(0, 0))
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 8, LCM(8, 2))
	assert.Equal(t, 21, LCM(3, 7))
	assert.Equal(t, 0, LCM(0, 5))
}

func TestReduce(t *testing.T) {
	tests := []struct {
		n, d         int
		wantN, wantD int
	}{
		{2, 4, 1, 2},
		{6, 3, 2, 1},
		{5, 7, 5, 7},
		{3, -6, -1, 2},
		{0, 5, 0, 1},
	}
	for _, tc := range tests {
		n, d := Reduce(tc.n, tc.d)
		assert.Equal(t, tc.wantN, n, "Reduce(%d, %d) numerator", tc.n, tc.d)
		assert.Equal(t, tc.wantD, d, "Reduce(%d, %d) denominator", tc.n, tc.d)
	}
}

func TestReduce_Idempotent(t *testing.T) {
	for n := -12; n <= 12; n++ {
		for d := 1; d <= 12; d++ {
			n1, d1 := Reduce(n, d)
			n2, d2 := Reduce(n1, d1)
			if n1 != n2 || d1 != d2 {
				t.Fatalf("Reduce(%d/%d) = %d/%d but reducing again gives %d/%d", n, d, n1, d1, n2, d2)
			}
		}
	}
}

func TestFormatQuotient(t *testing.T) {
	assert.Equal(t, "4", formatQuotient(12, 3))
	assert.Equal(t, "7/2", formatQuotient(14, 4))
	assert.Equal(t, "3/4", FormatFraction(3, 4))
}
