package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Frontend: "window", Score: 12, Duration: 15 * time.Second, EndReason: EndCrash, Seed: 1},
		{Frontend: "tui", Score: 5, Duration: 4 * time.Second, EndReason: EndClosed, Seed: 2},
		{Frontend: "window", Score: 30, Duration: 40 * time.Second, EndReason: EndCrash, Seed: 3},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 30 || runs[1].Score != 12 || runs[2].Score != 5 {
		t.Errorf("Unexpected order: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}

	top := runs[0]
	if top.Frontend != "window" || top.EndReason != EndCrash || top.Seed != 3 {
		t.Errorf("Top run fields not round-tripped: %+v", top)
	}
	if top.Duration != 40*time.Second {
		t.Errorf("Expected duration 40s, got %v", top.Duration)
	}
	if runs[2].EndReason != EndClosed {
		t.Errorf("Expected closed end reason, got %q", runs[2].EndReason)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(Run{Frontend: "window", Score: i, EndReason: EndCrash}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 14 {
		t.Errorf("Expected best score 14, got %d", runs[0].Score)
	}

	// Non-positive limit falls back to 10
	runs, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(runs))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 9, 1} {
		if _, err := store.SaveRun(Run{Frontend: "window", Score: score, EndReason: EndCrash}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 1 || runs[1].Score != 9 {
		t.Errorf("Expected newest first [1 9], got %+v", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty log, got %d", best)
	}

	store.SaveRun(Run{Frontend: "window", Score: 7, EndReason: EndCrash})
	store.SaveRun(Run{Frontend: "tui", Score: 21, EndReason: EndCrash})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 21 {
		t.Errorf("Expected best score 21, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Frontend: "window", Score: 7, EndReason: EndCrash})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(Run{Frontend: "window", Score: 42, EndReason: EndCrash})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	best, err := store2.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("Expected persisted score 42, got %d", best)
	}
}
