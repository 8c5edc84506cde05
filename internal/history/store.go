// Package history persists an audit trail of appsweep runs in SQLite.
// Decisions stay derived data; only what actually happened to the
// filesystem (and when) is recorded. Recording is best-effort at call
// sites: a history failure never fails the run itself.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/appsweep/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Run modes recorded in the runs table.
const (
	ModePreview = "preview"
	ModeExecute = "execute"
)

// Run is one recorded appsweep run.
type Run struct {
	ID          string // UUID, copied from the Report
	Directory   string
	Mode        string // "preview" or "execute"
	Scanned     int
	Groups      int
	Unparseable int
	Deleted     int
	Failed      int
	Skipped     int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Deletion is one recorded deletion attempt within a run.
type Deletion struct {
	ID      int64
	RunID   string
	Path    string
	Base    string
	Version string
	Success bool
	Error   string
}

// Store manages the SQLite run-history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a Store and initializes the database schema.
func NewStore(dbPath string) (*Store, error) {
	// Ensure parent directory exists for file-based databases.
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so subsequent statements wait on locks instead
	// of failing immediately.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// execWithRetry executes a SQL statement with exponential backoff retry on lock errors.
func execWithRetry(db *sql.DB, query string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(query)
		if err == nil {
			return nil
		}

		// Only retry on "database is locked" errors.
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}

		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RunFromOutcome assembles a Run record from a report and its outcome.
func RunFromOutcome(report *models.Report, outcome *models.Outcome) *Run {
	mode := ModeExecute
	if outcome.Preview {
		mode = ModePreview
	}
	return &Run{
		ID:          report.RunID,
		Directory:   report.Directory,
		Mode:        mode,
		Scanned:     report.Scanned,
		Groups:      len(report.Groups),
		Unparseable: len(report.Unparseable),
		Deleted:     len(outcome.Deleted),
		Failed:      len(outcome.Failed),
		Skipped:     len(outcome.Skipped),
		StartedAt:   report.ScannedAt,
		FinishedAt:  report.ScannedAt.Add(outcome.Duration),
	}
}

// RecordRun inserts a run and its deletion attempts in one transaction.
func (s *Store) RecordRun(ctx context.Context, run *Run, outcome *models.Outcome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs
			(id, directory, mode, scanned, groups_found, unparseable, deleted, failed, skipped, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Directory, run.Mode, run.Scanned, run.Groups, run.Unparseable,
		run.Deleted, run.Failed, run.Skipped, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	insert := func(cand models.Candidate, success bool, errMsg string) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO deletions (run_id, path, base_name, version, success, error_message)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, cand.Path, cand.Base, cand.RawVersion, success, errMsg)
		return err
	}

	for _, res := range outcome.Deleted {
		if err := insert(res.Candidate, true, ""); err != nil {
			return fmt.Errorf("insert deletion: %w", err)
		}
	}
	for _, res := range outcome.Failed {
		msg := ""
		if res.Err != nil {
			msg = res.Err.Error()
		}
		if err := insert(res.Candidate, false, msg); err != nil {
			return fmt.Errorf("insert deletion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent runs, newest first.
// limit <= 0 means no limit.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]*Run, error) {
	query := `SELECT id, directory, mode, scanned, groups_found, unparseable, deleted, failed, skipped, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(&run.ID, &run.Directory, &run.Mode, &run.Scanned, &run.Groups,
			&run.Unparseable, &run.Deleted, &run.Failed, &run.Skipped,
			&run.StartedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunDeletions returns the deletion attempts recorded for a run.
func (s *Store) RunDeletions(ctx context.Context, runID string) ([]*Deletion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, path, base_name, version, success, error_message
		 FROM deletions WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query deletions: %w", err)
	}
	defer rows.Close()

	var deletions []*Deletion
	for rows.Next() {
		d := &Deletion{}
		if err := rows.Scan(&d.ID, &d.RunID, &d.Path, &d.Base, &d.Version, &d.Success, &d.Error); err != nil {
			return nil, fmt.Errorf("scan deletion row: %w", err)
		}
		deletions = append(deletions, d)
	}
	return deletions, rows.Err()
}

// PruneRuns deletes the oldest runs beyond keep. keep <= 0 disables pruning.
func (s *Store) PruneRuns(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC, id LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}

// Clear removes all recorded runs and deletions.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM deletions`); err != nil {
		return fmt.Errorf("clear deletions: %w", err)
	}
	return nil
}
