package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathpath/internal/curriculum"
)

type problemRepo struct {
	db *sql.DB
}

func (r *problemRepo) Save(ctx context.Context, p curriculum.Problem) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal problem: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO problems (id, topic, grade_level, difficulty, data, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, string(p.Topic), string(p.GradeLevel), string(p.Difficulty), string(data), formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert problem %s: %w", p.ID, err)
	}
	return nil
}

func (r *problemRepo) Get(ctx context.Context, id string) (*curriculum.Problem, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM problems WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query problem: %w", err)
	}
	var p curriculum.Problem
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal problem: %w", err)
	}
	return &p, nil
}
