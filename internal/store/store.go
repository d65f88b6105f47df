// Package store handles the SQLite workout journal.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/fittrack/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width so recorded_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for journaled summaries.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
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
		`CREATE TABLE IF NOT EXISTS summaries (
			id INTEGER PRIMARY KEY,
			run_id TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			code TEXT NOT NULL,
			training_type TEXT NOT NULL,
			duration REAL NOT NULL,
			distance REAL NOT NULL,
			speed REAL NOT NULL,
			calories REAL NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_recorded_at ON summaries(recorded_at);`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_training_type ON summaries(training_type);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSummaries stores a batch of summaries in one transaction and returns their IDs.
func (s *Store) InsertSummaries(ctx context.Context, summaries []model.Summary) (ids []int64, err error) {
	if len(summaries) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO summaries (run_id, recorded_at, code, training_type, duration, distance, speed, calories)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	ids = make([]int64, 0, len(summaries))
	for _, sm := range summaries {
		res, err := stmt.ExecContext(ctx,
			sm.RunID,
			sm.RecordedAt.UTC().Format(timeLayout),
			sm.Code,
			sm.TrainingType,
			sm.Duration,
			sm.Distance,
			sm.Speed,
			sm.Calories,
		)
		if err != nil {
			return nil, err
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

// ListSummaries returns journaled summaries in recording order, filtered by
// training type and limited to the last N rows.
func (s *Store) ListSummaries(ctx context.Context, filter model.HistoryFilter) ([]model.Summary, error) {
	clause, args := filterClause(filter)
	query := fmt.Sprintf(`SELECT id, run_id, recorded_at, code, training_type, duration, distance, speed, calories
		FROM summaries
		WHERE %s
		ORDER BY recorded_at DESC, id DESC`, clause)
	if filter.Last > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Summary
	for rows.Next() {
		var sm model.Summary
		var recordedAt string
		if err := rows.Scan(&sm.ID, &sm.RunID, &recordedAt, &sm.Code, &sm.TrainingType,
			&sm.Duration, &sm.Distance, &sm.Speed, &sm.Calories); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, recordedAt)
		if err != nil {
			return nil, err
		}
		sm.RecordedAt = parsed
		result = append(result, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

// AggregateByType sums journaled summaries per training type.
func (s *Store) AggregateByType(ctx context.Context, filter model.HistoryFilter) ([]model.TypeAggregate, error) {
	clause, args := filterClause(filter)
	source := fmt.Sprintf(`SELECT training_type, duration, distance, calories
		FROM summaries
		WHERE %s
		ORDER BY recorded_at DESC, id DESC`, clause)
	if filter.Last > 0 {
		source += " LIMIT ?"
		args = append(args, filter.Last)
	}
	query := fmt.Sprintf(`WITH recent AS (%s)
	SELECT training_type, COUNT(*) AS cnt, SUM(duration) AS duration,
		SUM(distance) AS distance, SUM(calories) AS calories
	FROM recent
	GROUP BY training_type
	ORDER BY training_type`, source)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.TypeAggregate
	for rows.Next() {
		var agg model.TypeAggregate
		if err := rows.Scan(&agg.TrainingType, &agg.Count, &agg.Duration, &agg.Distance, &agg.Calories); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func filterClause(filter model.HistoryFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.TrainingType != "" {
		clauses = append(clauses, "training_type = ?")
		args = append(args, filter.TrainingType)
	}
	return strings.Join(clauses, " AND "), args
}
