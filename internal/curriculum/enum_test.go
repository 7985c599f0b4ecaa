package curriculum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in      string
		want    GradeLevel
		wantErr bool
	}{
		{"K", GradeK, false},
		{"k", GradeK, false},
		{"0", GradeK, false},
		{"3", Grade3, false},
		{"12", Grade12, false},
		{"13", "", true},
		{"-1", "", true},
		{"three", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGrade(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidGrade))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGradeNumber(t *testing.T) {
	assert.Equal(t, 0, GradeK.Number())
	assert.Equal(t, 7, Grade7.Number())
	assert.Equal(t, "Kindergarten", GradeK.DisplayName())
	assert.Equal(t, "Grade 4", Grade4.DisplayName())
}

func TestDifficultyIndex(t *testing.T) {
	for i, d := range AllDifficulties() {
		assert.Equal(t, i+1, d.Index())
		got, err := DifficultyFromIndex(i + 1)
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	_, err := DifficultyFromIndex(0)
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
	_, err = DifficultyFromIndex(5)
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("advanced")
	require.NoError(t, err)
	assert.Equal(t, Advanced, d)

	d, err = ParseDifficulty("2")
	require.NoError(t, err)
	assert.Equal(t, Intermediate, d)

	_, err = ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestParseLearningStyle(t *testing.T) {
	s, err := ParseLearningStyle("")
	require.NoError(t, err)
	assert.Equal(t, StyleVisual, s)

	s, err = ParseLearningStyle("kinesthetic")
	require.NoError(t, err)
	assert.Equal(t, StyleKinesthetic, s)

	_, err = ParseLearningStyle("telepathic")
	assert.ErrorIs(t, err, ErrInvalidLearningStyle)
}

func TestTopicTaxonomy(t *testing.T) {
	all := AllTopics()
	assert.Len(t, all, 29)
	for i, topic := range all {
		assert.Equal(t, i, topic.Order())
		assert.True(t, topic.Valid())
	}
	assert.Equal(t, -1, MathTopic("nope").Order())
	assert.Equal(t, "Coordinate Geometry", TopicCoordinateGeometry.DisplayName())
	assert.Equal(t, "Algebra 1", TopicAlgebra1.DisplayName())
}

func TestDefaultTopicTable_OnlyKnownTopics(t *testing.T) {
	for g, topics := range DefaultTopicTable() {
		require.True(t, g.Valid(), "grade %q", g)
		for _, topic := range topics {
			assert.True(t, topic.Valid(), "grade %s topic %q", g, topic)
		}
	}
}
