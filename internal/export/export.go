// Package export archives Oura API records in a local SQLite database.
//
// Every sync invocation is recorded as a run with a UUID, and the raw JSON
// body of each fetched record is upserted keyed by (resource, id), so
// repeated syncs refresh rows in place instead of duplicating them.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Record is one fetched document ready for archival.
type Record struct {
	ID   string // document id, or the sample timestamp for id-less resources
	Day  string // YYYY-MM-DD when the resource carries one, otherwise empty
	Body []byte // raw JSON as returned by the API
}

// Run describes one sync invocation.
type Run struct {
	ID          string
	StartedAt   time.Time
	CompletedAt *time.Time
	StartDate   string
	EndDate     string
	Records     int
}

// Store persists records and run metadata in SQLite.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With("component", "export"),
	}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *Store) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// BeginRun records the start of a sync covering [startDate, endDate] and
// returns the new run ID.
func (s *Store) BeginRun(ctx context.Context, startDate, endDate string) (string, error) {
	id := uuid.NewString()
	s.logger.Debug("sql", "op", "insert", "table", "sync_runs", "id", id)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sync_runs (id, started_at, start_date, end_date) VALUES (?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano), startDate, endDate,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// CompleteRun marks a run as finished and stores its total record count.
func (s *Store) CompleteRun(ctx context.Context, runID string, records int) error {
	s.logger.Debug("sql", "op", "update", "table", "sync_runs", "id", runID)

	result, err := s.db.ExecContext(ctx,
		`UPDATE sync_runs SET completed_at=?, records=? WHERE id=?`,
		time.Now().UTC().Format(time.RFC3339Nano), records, runID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

// SaveRecords upserts a batch of records for one resource. Existing rows
// with the same (resource, id) are refreshed with the new body and run.
func (s *Store) SaveRecords(ctx context.Context, runID, resource string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	s.logger.Debug("sql", "op", "upsert", "table", "records", "resource", resource, "count", len(records))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (resource, id, day, body, run_id, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (resource, id) DO UPDATE SET
			day        = excluded.day,
			body       = excluded.body,
			run_id     = excluded.run_id,
			fetched_at = excluded.fetched_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	fetchedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, resource, rec.ID, rec.Day, string(rec.Body), runID, fetchedAt); err != nil {
			return fmt.Errorf("upsert %s/%s: %w", resource, rec.ID, err)
		}
	}

	return tx.Commit()
}

// GetRun returns one run by ID, or nil if it does not exist.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	s.logger.Debug("sql", "op", "select", "table", "sync_runs", "id", id)

	var run Run
	var startedAt string
	var completedAt *string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, completed_at, start_date, end_date, records
		 FROM sync_runs WHERE id = ?`, id,
	).Scan(&run.ID, &startedAt, &completedAt, &run.StartDate, &run.EndDate, &run.Records)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
	if completedAt != nil {
		t, _ := time.Parse(time.RFC3339Nano, *completedAt)
		run.CompletedAt = &t
	}
	return &run, nil
}

// GetRecord returns the raw JSON body of one archived record, or nil if absent.
func (s *Store) GetRecord(ctx context.Context, resource, id string) ([]byte, error) {
	s.logger.Debug("sql", "op", "select", "table", "records", "resource", resource, "id", id)

	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM records WHERE resource = ? AND id = ?`, resource, id,
	).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// ResourceCounts returns the number of archived records per resource.
func (s *Store) ResourceCounts(ctx context.Context) (map[string]int, error) {
	s.logger.Debug("sql", "op", "select", "table", "records")

	rows, err := s.db.QueryContext(ctx,
		`SELECT resource, COUNT(*) FROM records GROUP BY resource`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var resource string
		var n int
		if err := rows.Scan(&resource, &n); err != nil {
			return nil, err
		}
		counts[resource] = n
	}
	return counts, rows.Err()
}
