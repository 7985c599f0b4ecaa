package store

import (
	"context"
	"errors"

	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/learningpath"
)

// ErrAdjustmentsRewritten is returned when a path being saved carries fewer
// adjustments than are already stored. The adjustment log is append-only.
var ErrAdjustmentsRewritten = errors.New("adjustment log is append-only")

// PathRepo persists learning paths.
type PathRepo interface {
	// Save inserts or replaces the path and appends any adjustments not
	// yet stored.
	Save(ctx context.Context, path *learningpath.LearningPath) error

	// Get returns the path with the given id, or nil if none exists.
	Get(ctx context.Context, id string) (*learningpath.LearningPath, error)

	// ListByStudent returns a student's paths, oldest first.
	ListByStudent(ctx context.Context, studentID string) ([]*learningpath.LearningPath, error)

	// Adjustments returns every stored adjustment across all paths in the
	// order they were saved.
	Adjustments(ctx context.Context) ([]AdjustmentRecord, error)
}

// AdjustmentRecord is a stored adjustment with its global sequence.
type AdjustmentRecord struct {
	Sequence int64
	PathID   string
	learningpath.Adjustment
}

// ProblemRepo persists generated problems so answers can be checked later.
type ProblemRepo interface {
	// Save stores the problem. Saving an existing id is an error.
	Save(ctx context.Context, p curriculum.Problem) error

	// Get returns the problem with the given id, or nil if none exists.
	Get(ctx context.Context, id string) (*curriculum.Problem, error)
}
