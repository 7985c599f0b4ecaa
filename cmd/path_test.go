package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	got, err := parseScores(map[string]string{"fractions": "0.5", "division": "1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"fractions": 0.5, "division": 1}, got)

	_, err = parseScores(map[string]string{"fractions": "half"})
	assert.ErrorContains(t, err, "score for fractions")

	_, err = parseScores(map[string]string{"fractions": "1.2"})
	assert.ErrorContains(t, err, "must be in [0, 1]")
}
