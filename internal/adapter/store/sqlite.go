package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"zephyrtask/internal/core/domain"
	"zephyrtask/internal/core/ports"
)

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
  position  INTEGER PRIMARY KEY AUTOINCREMENT,
  time      TEXT    NOT NULL,
  event     TEXT    NOT NULL,
  value     INTEGER NOT NULL,
  completed INTEGER NOT NULL DEFAULT 0
);`

const loadTasksQuery = `
SELECT time, event, value, completed
FROM tasks
ORDER BY position;`

type taskRow struct {
	Time      string `db:"time"`
	Event     string `db:"event"`
	Value     int    `db:"value"`
	Completed bool   `db:"completed"`
}

// SQLiteStore implements the same whole-collection load/save contract as
// FileStore on top of an embedded database. Save replaces the entire table
// in one transaction, mirroring the whole-file-replace semantics of the
// JSON document.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ ports.TaskStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at dbPath and ensures the
// tasks table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTasksTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tasks table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the whole collection in insertion order. Unlike the flat-file
// store there is no undecodable-document case here, so Parsed is set on
// every successful read and database failures surface as errors.
func (s *SQLiteStore) Load(ctx context.Context) (ports.LoadResult, error) {
	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, loadTasksQuery); err != nil {
		return ports.LoadResult{}, fmt.Errorf("load tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, domain.Task(row))
	}

	return ports.LoadResult{Tasks: tasks, Parsed: true}, nil
}

// Save replaces the stored collection with the given one.
func (s *SQLiteStore) Save(ctx context.Context, tasks []domain.Task) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	for _, task := range tasks {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO tasks (time, event, value, completed) VALUES (?, ?, ?, ?)",
			task.Time, task.Event, task.Value, task.Completed,
		)
		if err != nil {
			return fmt.Errorf("insert task %q: %w", task.Event, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
