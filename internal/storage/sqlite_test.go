package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/games/powerpong"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for i, best := range []int{12, 40, 7} {
		_, err := store.SaveRun(RunRecord{
			Source:    "sim",
			Seed:      int64(i + 1),
			EndReason: "game_over",
			Frames:    1000,
			Hits:      best,
			BestScore: best,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, expected 3", len(runs))
	}

	// Newest first
	if runs[0].Seed != 3 || runs[2].Seed != 1 {
		t.Errorf("RecentRuns() order = seeds %d..%d, expected 3..1", runs[0].Seed, runs[2].Seed)
	}
	if runs[1].BestScore != 40 {
		t.Errorf("runs[1].BestScore = %d, expected 40", runs[1].BestScore)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 30 {
		if _, err := store.SaveRun(RunRecord{Source: "sim", Seed: int64(i), EndReason: "frame_limit"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	runs, err = store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("RecentRuns(0) returned %d runs, expected the default of 20", len(runs))
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{Source: "play", Seed: 99, EndReason: "quit", Snapshot: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if run.Seed != 99 || run.Source != "play" || len(run.Snapshot) != 3 {
		t.Errorf("RunByID() = %+v, expected seed 99 from play with a 3-byte snapshot", run)
	}

	missing, err := store.RunByID(id + 100)
	if err != nil {
		t.Fatalf("RunByID() on a missing id failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID() on a missing id = %+v, expected nil", missing)
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() on empty journal failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Totals() on empty journal = %+v, expected zero values", empty)
	}

	store.SaveRun(RunRecord{Source: "sim", EndReason: "game_over", Hits: 10, BestScore: 10, Frames: 100, ExtraBalls: 1})
	store.SaveRun(RunRecord{Source: "sim", EndReason: "game_over", Hits: 30, BestScore: 20, Frames: 300, Bonuses: 4})

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", totals.Runs)
	}
	if totals.BestScore != 20 {
		t.Errorf("BestScore = %d, expected 20", totals.BestScore)
	}
	if totals.AvgBest != 15 {
		t.Errorf("AvgBest = %v, expected 15", totals.AvgBest)
	}
	if totals.Hits != 40 || totals.Frames != 400 {
		t.Errorf("Hits/Frames = %d/%d, expected 40/400", totals.Hits, totals.Frames)
	}
	if totals.ExtraBalls != 1 || totals.Bonuses != 4 {
		t.Errorf("ExtraBalls/Bonuses = %d/%d, expected 1/4", totals.ExtraBalls, totals.Bonuses)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Source: "sim", EndReason: "game_over"})
	store.SaveRun(RunRecord{Source: "sim", EndReason: "game_over"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestRunRecordFromHeadlessRun(t *testing.T) {
	store := openTestStore(t)

	res := powerpong.RunHeadless(config.DefaultPowerPongConfig(), powerpong.RunOptions{Seed: 21, MaxFrames: 2000})
	rec, err := NewRunRecord(res, "sim")
	if err != nil {
		t.Fatalf("NewRunRecord() failed: %v", err)
	}
	if rec.Frames != int64(res.Stats.Frames) || rec.Hits != res.Stats.Hits {
		t.Errorf("NewRunRecord() = %+v, does not match stats %+v", rec, res.Stats)
	}

	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.RunByID(id)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}

	snap, err := got.DecodeSnapshot()
	if err != nil {
		t.Fatalf("DecodeSnapshot() failed: %v", err)
	}
	if snap.Hash() != res.Final.Hash() {
		t.Errorf("stored snapshot hash = %d, expected %d", snap.Hash(), res.Final.Hash())
	}
}

func TestRunRecordWithoutSnapshot(t *testing.T) {
	if _, err := (RunRecord{ID: 4}).DecodeSnapshot(); err == nil {
		t.Error("DecodeSnapshot() on an empty record should fail")
	}
}
