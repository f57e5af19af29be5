// Package history persists comparison runs in a SQLite database so past
// outcomes can be listed and re-checked. Recording is best-effort: a store
// failure downgrades to a warning and never changes the comparison outcome
// or exit code.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"semdiff/internal/errors"
	"semdiff/internal/logging"
)

// Run is one recorded comparison.
type Run struct {
	ID             string    `json:"id"`
	ExpectedPath   string    `json:"expectedPath"`
	ActualPath     string    `json:"actualPath"`
	ExpectedDigest string    `json:"expectedDigest"`
	ActualDigest   string    `json:"actualDigest"`
	Digest         string    `json:"digest"`
	Tolerance      float64   `json:"tolerance"`
	Ignore         []string  `json:"ignore,omitempty"`
	Equal          bool      `json:"equal"`
	Pointer        string    `json:"pointer,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store provides persistence for comparison runs.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// OpenStore opens or creates the history database at <dir>/history.db
func OpenStore(dir string, logger *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New(errors.StoreError, "cannot create history directory", err)
	}

	dbPath := filepath.Join(dir, "history.db")
	dbExists := fileExists(dbPath)

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.New(errors.StoreError, "cannot open history database", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, errors.New(errors.StoreError, "cannot set pragma", err)
		}
	}

	store := &Store{
		conn:   conn,
		logger: logger,
		dbPath: dbPath,
	}

	if !dbExists {
		logger.Debug("Creating history database", map[string]interface{}{
			"path": dbPath,
		})
	}
	if err := store.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, errors.New(errors.StoreError, "cannot initialize history schema", err)
	}

	return store, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			expected_path TEXT NOT NULL,
			actual_path TEXT NOT NULL,
			expected_digest TEXT NOT NULL,
			actual_digest TEXT NOT NULL,
			run_digest TEXT NOT NULL DEFAULT '',
			tolerance REAL NOT NULL DEFAULT 0,
			ignore_json TEXT,
			equal INTEGER NOT NULL,
			pointer TEXT,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_equal ON runs(equal);

		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);
		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Record inserts a run, assigning an ID and timestamp when absent, and
// returns the stored run.
func (s *Store) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	ignoreJSON, err := json.Marshal(run.Ignore)
	if err != nil {
		return run, errors.New(errors.StoreError, "cannot encode ignore list", err)
	}

	query := `
		INSERT INTO runs (id, expected_path, actual_path, expected_digest, actual_digest,
			run_digest, tolerance, ignore_json, equal, pointer, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.conn.Exec(query,
		run.ID,
		run.ExpectedPath,
		run.ActualPath,
		run.ExpectedDigest,
		run.ActualDigest,
		run.Digest,
		run.Tolerance,
		string(ignoreJSON),
		boolToInt(run.Equal),
		nullString(run.Pointer),
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return run, errors.New(errors.StoreError, "cannot insert run", err)
	}

	return run, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.Query(`
		SELECT id, expected_path, actual_path, expected_digest, actual_digest,
			run_digest, tolerance, ignore_json, equal, pointer, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.New(errors.StoreError, "cannot query runs", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New(errors.StoreError, "cannot iterate runs", err)
	}

	return runs, nil
}

// Prune deletes the oldest runs beyond maxRuns.
func (s *Store) Prune(maxRuns int) error {
	if maxRuns <= 0 {
		return nil
	}
	_, err := s.conn.Exec(`
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY created_at DESC, id LIMIT ?
		)
	`, maxRuns)
	if err != nil {
		return errors.New(errors.StoreError, "cannot prune runs", err)
	}
	return nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var equal int
	var ignoreJSON, ptr sql.NullString
	var createdAt string

	err := rows.Scan(
		&run.ID,
		&run.ExpectedPath,
		&run.ActualPath,
		&run.ExpectedDigest,
		&run.ActualDigest,
		&run.Digest,
		&run.Tolerance,
		&ignoreJSON,
		&equal,
		&ptr,
		&createdAt,
	)
	if err != nil {
		return run, errors.New(errors.StoreError, "cannot scan run", err)
	}

	run.Equal = equal != 0
	run.Pointer = ptr.String
	if ignoreJSON.Valid && ignoreJSON.String != "" {
		if err := json.Unmarshal([]byte(ignoreJSON.String), &run.Ignore); err != nil {
			return run, errors.New(errors.StoreError, fmt.Sprintf("corrupt ignore list for run %s", run.ID), err)
		}
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return run, errors.New(errors.StoreError, fmt.Sprintf("corrupt timestamp for run %s", run.ID), err)
	}
	run.CreatedAt = t

	return run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
