package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var ErrRunNotFound = errors.New("run not found")

type Store struct {
	db *sql.DB
}

// Run is one recorded solve. Solutions is only filled in by GetRun.
type Run struct {
	ID            int64
	CreatedAt     time.Time
	Groups        []string
	Ignore        []string
	Depth         int
	SolutionCount int
	StatesPopped  int64
	Duration      time.Duration
	Solutions     [][]string
}

func getDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback: get home dir from user.Current()
		if u, userErr := user.Current(); userErr == nil {
			home = u.HomeDir
		} else {
			return "", err
		}
	}
	dataDir := filepath.Join(home, ".local", "share", "lbsolver")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DefaultPath returns the history database location, creating its directory.
func DefaultPath() (string, error) {
	dataDir, err := getDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "history.db"), nil
}

func New() (*Store, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(dbPath)
}

// Open opens or creates the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		box_groups TEXT NOT NULL,
		ignore_words TEXT NOT NULL,
		depth INTEGER NOT NULL,
		solution_count INTEGER NOT NULL,
		states_popped INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS solutions (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		words TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordRun stores run and its solutions and returns the new run id.
// CreatedAt defaults to now.
func (s *Store) RecordRun(run *Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	groups, err := json.Marshal(run.Groups)
	if err != nil {
		return 0, err
	}
	ignore, err := json.Marshal(nonNil(run.Ignore))
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (created_at, box_groups, ignore_words, depth, solution_count, states_popped, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(groups),
		string(ignore),
		run.Depth,
		len(run.Solutions),
		run.StatesPopped,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, chain := range run.Solutions {
		words, err := json.Marshal(chain)
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(
			"INSERT INTO solutions (run_id, position, words) VALUES (?, ?, ?)",
			id, i, string(words),
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	run.ID = id
	run.SolutionCount = len(run.Solutions)
	return id, nil
}

// RecentRuns returns up to limit runs, newest first, without their solutions.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, box_groups, ignore_words, depth, solution_count, states_popped, duration_ms
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// GetRun returns one run with its solutions in their original order.
func (s *Store) GetRun(id int64) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, box_groups, ignore_words, depth, solution_count, states_popped, duration_ms
		FROM runs WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT words FROM solutions WHERE run_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	run.Solutions = [][]string{}
	for rows.Next() {
		var words string
		if err := rows.Scan(&words); err != nil {
			return nil, err
		}
		var chain []string
		if err := json.Unmarshal([]byte(words), &chain); err != nil {
			return nil, fmt.Errorf("run %d: bad solution row: %w", id, err)
		}
		run.Solutions = append(run.Solutions, chain)
	}
	return run, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		run        Run
		createdAt  string
		groups     string
		ignore     string
		durationMS int64
	)
	if err := sc.Scan(
		&run.ID, &createdAt, &groups, &ignore,
		&run.Depth, &run.SolutionCount, &run.StatesPopped, &durationMS,
	); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("run %d: bad timestamp %q: %w", run.ID, createdAt, err)
	}
	run.CreatedAt = t
	run.Duration = time.Duration(durationMS) * time.Millisecond
	if err := json.Unmarshal([]byte(groups), &run.Groups); err != nil {
		return nil, fmt.Errorf("run %d: bad groups: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(ignore), &run.Ignore); err != nil {
		return nil, fmt.Errorf("run %d: bad ignore list: %w", run.ID, err)
	}
	return &run, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (s *Store) Close() error {
	return s.db.Close()
}
