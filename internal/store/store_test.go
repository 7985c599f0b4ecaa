package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/learningpath"
)

var dbCounter atomic.Int64

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// Each test gets its own named in-memory database.
	dsn := fmt.Sprintf("file:mathpath_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mathpath.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Reserve(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, first)

	next, err := s.seq.Reserve(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, next)

	none, err := s.seq.Reserve(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func samplePath(id, student string, created time.Time) *learningpath.LearningPath {
	return &learningpath.LearningPath{
		ID:            id,
		StudentID:     student,
		GradeLevel:    curriculum.Grade3,
		LearningStyle: curriculum.StyleVisual,
		Lessons:       []string{"lesson_div_3_2", "lesson_mult_3_1"},
		Progress:      map[string]float64{},
		MasteryScores: map[curriculum.MathTopic]float64{
			curriculum.TopicDivision:       0.55,
			curriculum.TopicMultiplication: 0.4,
		},
		RecommendedTopics:   []curriculum.MathTopic{curriculum.TopicDivision},
		LearningGoals:       []string{"fluency"},
		EstimatedCompletion: created.Add(14 * 24 * time.Hour),
		CreatedAt:           created,
		UpdatedAt:           created,
	}
}

func TestPathSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "missing path is absent, not an error")

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p := samplePath("path_s1_a", "s1", now)
	require.NoError(t, repo.Save(ctx, p))

	got, err = repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p, got)
}

func TestPathSave_AppendsAdjustments(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p := samplePath("path_s1_a", "s1", now)
	require.NoError(t, repo.Save(ctx, p))

	p.Adjustments = append(p.Adjustments, learningpath.Adjustment{
		Timestamp: now.Add(time.Minute), Action: learningpath.ActionAddedRemedial,
		Topic: curriculum.TopicDivision, Reason: "mastery_score_0.55",
	})
	p.CurrentLesson = 1
	p.Progress["lesson_div_3_2"] = 0.9
	require.NoError(t, repo.Save(ctx, p))

	p.Adjustments = append(p.Adjustments, learningpath.Adjustment{
		Timestamp: now.Add(2 * time.Minute), Action: learningpath.ActionAcceleratedPath,
		Reason: "high_mastery_scores",
	})
	require.NoError(t, repo.Save(ctx, p))
	// Saving again without changes appends nothing.
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	require.Len(t, got.Adjustments, 2)
	assert.Equal(t, learningpath.ActionAddedRemedial, got.Adjustments[0].Action)
	assert.Equal(t, learningpath.ActionAcceleratedPath, got.Adjustments[1].Action)

	all, err := repo.Adjustments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].Sequence, all[1].Sequence)
	assert.Equal(t, p.ID, all[0].PathID)
}

func TestPathSave_RejectsRewrittenLog(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p := samplePath("path_s1_a", "s1", now)
	p.Adjustments = []learningpath.Adjustment{{Timestamp: now, Action: learningpath.ActionAcceleratedPath, Reason: "high_mastery_scores"}}
	require.NoError(t, repo.Save(ctx, p))

	p.Adjustments = nil
	err := repo.Save(ctx, p)
	assert.True(t, errors.Is(err, ErrAdjustmentsRewritten), "got %v", err)
}

func TestAdjustmentsInterleaveAcrossPaths(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := samplePath("path_a", "s1", now)
	b := samplePath("path_b", "s2", now)

	adj := func(reason string) learningpath.Adjustment {
		return learningpath.Adjustment{Timestamp: now, Action: learningpath.ActionAddedRemedial, Topic: curriculum.TopicDivision, Reason: reason}
	}

	a.Adjustments = append(a.Adjustments, adj("a1"))
	require.NoError(t, repo.Save(ctx, a))
	b.Adjustments = append(b.Adjustments, adj("b1"))
	require.NoError(t, repo.Save(ctx, b))
	a.Adjustments = append(a.Adjustments, adj("a2"))
	require.NoError(t, repo.Save(ctx, a))

	all, err := repo.Adjustments(ctx)
	require.NoError(t, err)
	var reasons []string
	for _, r := range all {
		reasons = append(reasons, r.Reason)
	}
	assert.Equal(t, []string{"a1", "b1", "a2"}, reasons)
}

func TestListByStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, samplePath("path_s1_b", "s1", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, samplePath("path_s1_a", "s1", base)))
	require.NoError(t, repo.Save(ctx, samplePath("path_s2_a", "s2", base)))

	paths, err := repo.ListByStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "path_s1_a", paths[0].ID)
	assert.Equal(t, "path_s1_b", paths[1].ID)

	none, err := repo.ListByStudent(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProblemSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	p := curriculum.Problem{
		ID:            "prob_fractions_1234abcd",
		Topic:         curriculum.TopicFractions,
		GradeLevel:    curriculum.Grade4,
		Difficulty:    curriculum.Intermediate,
		Question:      "What is 1/2 + 1/3?",
		Answer:        "5/6",
		SolutionSteps: []string{"Find common denominator"},
		Hints:         []string{"Use sixths"},
		Explanation:   "Fractions represent parts of a whole.",
	}
	require.NoError(t, repo.Save(ctx, p))
	assert.Error(t, repo.Save(ctx, p), "duplicate id")

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p, *got)

	got, err = repo.Get(ctx, "prob_missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
