package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/learningpath"
)

type pathRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *pathRepo) Save(ctx context.Context, path *learningpath.LearningPath) error {
	stored, err := r.adjustmentCount(ctx, path.ID)
	if err != nil {
		return err
	}
	if stored > len(path.Adjustments) {
		return fmt.Errorf("save path %s: %w (stored %d, got %d)", path.ID, ErrAdjustmentsRewritten, stored, len(path.Adjustments))
	}
	pending := path.Adjustments[stored:]

	// Sequence numbers are claimed before the transaction opens so the
	// counter's own write does not wait on it.
	seqs, err := r.seq.Reserve(ctx, len(pending))
	if err != nil {
		return err
	}

	row := *path
	row.Adjustments = nil
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal path: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO learning_paths (id, student_id, grade_level, current_lesson, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   student_id = excluded.student_id,
		   grade_level = excluded.grade_level,
		   current_lesson = excluded.current_lesson,
		   data = excluded.data,
		   updated_at = excluded.updated_at`,
		path.ID, path.StudentID, string(path.GradeLevel), path.CurrentLesson, string(data),
		formatTime(path.CreatedAt), formatTime(path.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert path: %w", err)
	}

	for i, a := range pending {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO path_adjustments (sequence, path_id, position, timestamp, action, topic, reason)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			seqs[i], path.ID, stored+i, formatTime(a.Timestamp), a.Action, string(a.Topic), a.Reason,
		)
		if err != nil {
			return fmt.Errorf("append adjustment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *pathRepo) adjustmentCount(ctx context.Context, pathID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM path_adjustments WHERE path_id = ?`, pathID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count adjustments: %w", err)
	}
	return n, nil
}

func (r *pathRepo) Get(ctx context.Context, id string) (*learningpath.LearningPath, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM learning_paths WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query path: %w", err)
	}
	return r.hydrate(ctx, data)
}

func (r *pathRepo) ListByStudent(ctx context.Context, studentID string) ([]*learningpath.LearningPath, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM learning_paths WHERE student_id = ? ORDER BY created_at, id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("query paths: %w", err)
	}
	var blobs []string
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan path: %w", err)
		}
		blobs = append(blobs, data)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	paths := make([]*learningpath.LearningPath, 0, len(blobs))
	for _, data := range blobs {
		p, err := r.hydrate(ctx, data)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// hydrate decodes a stored path row and attaches its adjustments.
func (r *pathRepo) hydrate(ctx context.Context, data string) (*learningpath.LearningPath, error) {
	var p learningpath.LearningPath
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal path: %w", err)
	}
	recs, err := r.queryAdjustments(ctx, `WHERE path_id = ?`, p.ID)
	if err != nil {
		return nil, err
	}
	p.Adjustments = nil
	for _, rec := range recs {
		p.Adjustments = append(p.Adjustments, rec.Adjustment)
	}
	if p.Progress == nil {
		p.Progress = make(map[string]float64)
	}
	if p.MasteryScores == nil {
		p.MasteryScores = make(map[curriculum.MathTopic]float64)
	}
	return &p, nil
}

func (r *pathRepo) Adjustments(ctx context.Context) ([]AdjustmentRecord, error) {
	return r.queryAdjustments(ctx, "")
}

func (r *pathRepo) queryAdjustments(ctx context.Context, where string, args ...any) ([]AdjustmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, path_id, timestamp, action, topic, reason FROM path_adjustments `+where+` ORDER BY sequence`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query adjustments: %w", err)
	}
	defer rows.Close()

	var out []AdjustmentRecord
	for rows.Next() {
		var (
			rec   AdjustmentRecord
			ts    string
			topic string
		)
		if err := rows.Scan(&rec.Sequence, &rec.PathID, &ts, &rec.Action, &topic, &rec.Reason); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		rec.Topic = curriculum.MathTopic(topic)
		if rec.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("parse adjustment timestamp: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
