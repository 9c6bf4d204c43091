package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/gosched/internal/workload"
	"github.com/me/gosched/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns
// a Store. Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// CreateWorkload stores a named workload. The name must be unused.
func (s *SQLiteStore) CreateWorkload(ctx context.Context, w *workload.Workload) error {
	s.logger.Debug("sql", "op", "insert", "table", "workloads", "name", w.Name)

	if w.Name == "" {
		return model.NewValidationError("workload name must not be empty",
			model.FieldError{Field: "name", Message: "must not be empty"})
	}
	existing, err := s.GetWorkload(ctx, w.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return model.NewConflictError(fmt.Sprintf("workload '%s' already exists", w.Name))
	}

	jobsJSON, err := json.Marshal(w.Jobs)
	if err != nil {
		return fmt.Errorf("marshal jobs: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO workloads (name, quantum, jobs, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		w.Name, w.Quantum, string(jobsJSON), now, now,
	)
	return err
}

// GetWorkload returns the named workload, or (nil, nil) when absent.
func (s *SQLiteStore) GetWorkload(ctx context.Context, name string) (*workload.Workload, error) {
	s.logger.Debug("sql", "op", "select", "table", "workloads", "name", name)

	var w workload.Workload
	var jobsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, quantum, jobs FROM workloads WHERE name = ?`, name,
	).Scan(&w.Name, &w.Quantum, &jobsJSON)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(jobsJSON), &w.Jobs); err != nil {
		return nil, fmt.Errorf("unmarshal jobs: %w", err)
	}
	return &w, nil
}

// ListWorkloads returns a page of workloads ordered by creation time, plus
// the total count.
func (s *SQLiteStore) ListWorkloads(ctx context.Context, opts model.ListOptions) ([]*workload.Workload, int, error) {
	s.logger.Debug("sql", "op", "select", "table", "workloads", "limit", opts.Limit, "offset", opts.Offset)
	opts.Clamp()

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workloads`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, quantum, jobs FROM workloads
		 ORDER BY created_at, name LIMIT ? OFFSET ?`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*workload.Workload
	for rows.Next() {
		var w workload.Workload
		var jobsJSON string
		if err := rows.Scan(&w.Name, &w.Quantum, &jobsJSON); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal([]byte(jobsJSON), &w.Jobs); err != nil {
			return nil, 0, fmt.Errorf("unmarshal jobs for %s: %w", w.Name, err)
		}
		out = append(out, &w)
	}
	return out, total, rows.Err()
}

// DeleteWorkload removes the named workload; deleting an absent name is a
// NOT_FOUND error.
func (s *SQLiteStore) DeleteWorkload(ctx context.Context, name string) error {
	s.logger.Debug("sql", "op", "delete", "table", "workloads", "name", name)

	res, err := s.db.ExecContext(ctx, `DELETE FROM workloads WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.NewNotFoundError("workload", name)
	}
	return nil
}
