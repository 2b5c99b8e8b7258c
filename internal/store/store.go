// Package store persists assessment history in SQLite. Secrets are never
// written; only their metrics are.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/passgen/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so created_at sorts and compares as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for assessment history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS assessments (
			id INTEGER PRIMARY KEY,
			batch_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			length INTEGER NOT NULL,
			entropy_bits REAL NOT NULL,
			score INTEGER NOT NULL,
			level TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_batch ON assessments(batch_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAssessments stores records in one transaction and returns their ids.
func (s *Store) InsertAssessments(ctx context.Context, records []model.AssessmentRecord) (ids []int64, err error) {
	if len(records) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO assessments (batch_id, created_at, mode, length, entropy_bits, score, level)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids = make([]int64, 0, len(records))
	for _, r := range records {
		res, err := stmt.ExecContext(ctx,
			r.BatchID,
			r.CreatedAt.UTC().Format(timeLayout),
			r.Mode,
			r.Length,
			r.EntropyBits,
			r.Score,
			r.Level,
		)
		if err != nil {
			return nil, fmt.Errorf("insert assessment: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ListAssessments returns records matching filter, oldest first. When
// filter.Last is positive only the most recent Last records are returned.
func (s *Store) ListAssessments(ctx context.Context, filter model.HistoryFilter) ([]model.AssessmentRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, filter.Mode)
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}
	limit := -1
	if filter.Last > 0 {
		limit = filter.Last
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT id, batch_id, created_at, mode, length, entropy_bits, score, level FROM (
		SELECT * FROM assessments
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	) ORDER BY created_at ASC, id ASC`, strings.Join(clauses, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AssessmentRecord
	for rows.Next() {
		var r model.AssessmentRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &r.BatchID, &createdAt, &r.Mode, &r.Length, &r.EntropyBits, &r.Score, &r.Level); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		r.CreatedAt = parsed
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Clear deletes every record and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assessments`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
