package curriculum

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalContent = `
version: v1.3.0
grades:
  "3": [fractions, division]
lessons:
  - id: l1
    title: Halves and Quarters
    topic: fractions
    grade_level: "3"
    duration_minutes: 20
problems:
  - id: p1
    topic: fractions
    grade_level: "3"
    difficulty: beginner
    question: Simplify the fraction 2/4
    answer: "1/2"
    solution_steps: ["Divide top and bottom by 2"]
    hints: ["Look for common factors"]
`

func TestLoadCatalog_Minimal(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(minimalContent))
	require.NoError(t, err)

	assert.Equal(t, []MathTopic{TopicFractions, TopicDivision}, c.TopicsForGrade(Grade3))
	assert.Empty(t, c.TopicsForGrade(Grade4), "grades section replaces the default table")

	l, ok := c.Lesson("l1")
	require.True(t, ok)
	assert.Equal(t, 20, l.DurationMinutes)

	p, ok := c.Problem("p1")
	require.True(t, ok)
	assert.Equal(t, "1/2", p.Answer)
}

func TestLoadCatalog_DefaultTableWhenNoGrades(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader("version: v1.0.0\n"))
	require.NoError(t, err)
	assert.Len(t, c.TopicsForGrade(Grade3), 5)
	assert.Zero(t, c.LessonCount())
	assert.Zero(t, c.ProblemCount())
}

func TestLoadCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errSub  string
	}{
		{
			name:    "missing version",
			content: "lessons: []\n",
			errSub:  "schema validation",
		},
		{
			name:    "bad semver",
			content: "version: latest\n",
			errSub:  "not a valid semantic version",
		},
		{
			name:    "unsupported major",
			content: "version: v2.0.0\n",
			errSub:  "not supported",
		},
		{
			name: "unknown topic",
			content: `version: v1.0.0
lessons:
  - id: l1
    title: Alchemy
    topic: alchemy
    grade_level: "3"
    duration_minutes: 10
`,
			errSub: "schema validation",
		},
		{
			name: "problem without hints",
			content: `version: v1.0.0
problems:
  - id: p1
    topic: fractions
    grade_level: "3"
    difficulty: beginner
    question: q
    answer: "1"
    solution_steps: ["s"]
    hints: []
`,
			errSub: "schema validation",
		},
		{
			name:    "not yaml",
			content: "version: [unterminated\n",
			errSub:  "parse content",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalContent), 0o644))

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.LessonCount())

	_, err = LoadCatalogFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBundledContentIsValid(t *testing.T) {
	c, err := LoadCatalog(bytes.NewReader(seedContent))
	require.NoError(t, err)

	// Every topic of grades 1-5 has at least one lesson for that grade.
	for _, g := range []GradeLevel{Grade1, Grade2, Grade3, Grade4, Grade5} {
		for _, topic := range c.TopicsForGrade(g) {
			assert.NotEmpty(t, c.LessonsForTopic(topic, &g), "grade %s topic %s", g, topic)
		}
	}
}
