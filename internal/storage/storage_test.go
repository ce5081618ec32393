package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
)

// newTestStore creates a test store with a temporary database
func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	// Create temp directory for test database
	tmpDir, err := os.MkdirTemp("", "lbsolver-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to open database: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init schema: %v", err)
	}

	store := &Store{db: db}
	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func sampleRun() *Run {
	return &Run{
		CreatedAt:    time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
		Groups:       []string{"abc", "def", "ghi", "jkl"},
		Ignore:       []string{"adg"},
		Depth:        2,
		StatesPopped: 1234,
		Duration:     1500 * time.Millisecond,
		Solutions: [][]string{
			{"adgjbe", "ehkcfil"},
			{"adgjbe", "ehkcfli"},
		},
	}
}

func TestRecordAndGetRun(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	run := sampleRun()
	id, err := store.RecordRun(run)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if id == 0 || run.ID != id {
		t.Errorf("RecordRun id = %d, run.ID = %d", id, run.ID)
	}

	got, err := store.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}

	want := sampleRun()
	want.ID = id
	want.SolutionCount = 2
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetRun() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordRunWithoutSolutions(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	run := &Run{Groups: []string{"abc", "def", "ghi", "jkl"}, Depth: 6}
	id, err := store.RecordRun(run)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if run.CreatedAt.IsZero() {
		t.Error("RecordRun should default CreatedAt")
	}

	got, err := store.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.SolutionCount != 0 || len(got.Solutions) != 0 {
		t.Errorf("got %d solutions (count %d), want none", len(got.Solutions), got.SolutionCount)
	}
	if got.Ignore == nil || len(got.Ignore) != 0 {
		t.Errorf("Ignore = %#v, want empty list", got.Ignore)
	}
}

func TestGetRunNotFound(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	_, err := store.GetRun(42)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("GetRun(42) error = %v, want ErrRunNotFound", err)
	}
}

func TestRecentRuns(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	// Empty store
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}

	for i := 0; i < 5; i++ {
		run := sampleRun()
		run.Depth = i + 1
		if _, err := store.RecordRun(run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	runs, err = store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	for i, want := range []int{5, 4, 3} {
		if runs[i].Depth != want {
			t.Errorf("runs[%d].Depth = %d, want %d", i, runs[i].Depth, want)
		}
		if runs[i].Solutions != nil {
			t.Errorf("runs[%d].Solutions should not be loaded", i)
		}
		if runs[i].SolutionCount != 2 {
			t.Errorf("runs[%d].SolutionCount = %d, want 2", i, runs[i].SolutionCount)
		}
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.RecordRun(sampleRun()); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	store.Close()

	// Reopening keeps existing data
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}
