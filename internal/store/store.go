package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the database handle and provides access to repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// PathRepo returns a PathRepo backed by this store.
func (s *Store) PathRepo() PathRepo {
	return &pathRepo{db: s.db, seq: s.seq}
}

// ProblemRepo returns a ProblemRepo backed by this store.
func (s *Store) ProblemRepo() ProblemRepo {
	return &problemRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS learning_paths (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		grade_level TEXT NOT NULL DEFAULT '',
		current_lesson INTEGER NOT NULL DEFAULT 0,
		data TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_learning_paths_student ON learning_paths(student_id);

	CREATE TABLE IF NOT EXISTS path_adjustments (
		sequence INTEGER PRIMARY KEY,
		path_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		action TEXT NOT NULL,
		topic TEXT NOT NULL DEFAULT '',
		reason TEXT NOT NULL DEFAULT '',
		UNIQUE (path_id, position),
		FOREIGN KEY (path_id) REFERENCES learning_paths(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS problems (
		id TEXT PRIMARY KEY,
		topic TEXT NOT NULL,
		grade_level TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		data TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHPATH_DB environment variable
// 2. $XDG_DATA_HOME/mathpath/mathpath.db
// 3. ~/.local/share/mathpath/mathpath.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHPATH_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mathpath", "mathpath.db")
	return p, ensureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return ensureDir(path)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
