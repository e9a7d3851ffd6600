// Package storage provides SQLite-based persistence for the run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished game as stored in the journal.
type RunRecord struct {
	ID        int64
	Source    string // "play", "sim" or "ssh"
	Seed      int64
	EndReason string
	Frames    int64

	Hits      int
	Misses    int
	LivesLost int
	BestScore int
	Score     int // Score of the life in play when the run ended
	LivesLeft int

	ExtraBalls   int // Extra ball rewards
	PowerUpDrops int // Power-up rewards
	Bonuses      int // Bonus point rewards
	Collected    int // Power-ups picked up by balls

	Snapshot  []byte // Encoded final state
	CreatedAt time.Time
}

// Totals aggregates the whole journal.
type Totals struct {
	Runs         int
	BestScore    int
	AvgBest      float64
	Hits         int64
	Frames       int64
	ExtraBalls   int64
	PowerUpDrops int64
	Bonuses      int64
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			seed INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			lives_lost INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			extra_balls INTEGER NOT NULL DEFAULT 0,
			powerup_drops INTEGER NOT NULL DEFAULT 0,
			bonuses INTEGER NOT NULL DEFAULT 0,
			collected INTEGER NOT NULL DEFAULT 0,
			snapshot BLOB,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(best_score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun appends a run to the journal and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (source, seed, end_reason, frames, hits, misses, lives_lost, best_score, score, lives_left,
		  extra_balls, powerup_drops, bonuses, collected, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Seed, r.EndReason, r.Frames,
		r.Hits, r.Misses, r.LivesLost, r.BestScore, r.Score, r.LivesLeft,
		r.ExtraBalls, r.PowerUpDrops, r.Bonuses, r.Collected, r.Snapshot,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, source, seed, end_reason, frames, hits, misses, lives_lost, best_score, score,
	lives_left, extra_balls, powerup_drops, bonuses, collected, snapshot, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.Source, &r.Seed, &r.EndReason, &r.Frames,
		&r.Hits, &r.Misses, &r.LivesLost, &r.BestScore, &r.Score,
		&r.LivesLeft, &r.ExtraBalls, &r.PowerUpDrops, &r.Bonuses, &r.Collected,
		&r.Snapshot, &createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID returns one run, or nil if it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run %d: %w", id, err)
	}
	return &r, nil
}

// Totals aggregates every run in the journal.
func (s *Store) Totals() (*Totals, error) {
	t := &Totals{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(best_score), 0), COALESCE(AVG(best_score), 0),
		        COALESCE(SUM(hits), 0), COALESCE(SUM(frames), 0),
		        COALESCE(SUM(extra_balls), 0), COALESCE(SUM(powerup_drops), 0), COALESCE(SUM(bonuses), 0),
		        MAX(created_at)
		 FROM runs`,
	).Scan(&t.Runs, &t.BestScore, &t.AvgBest, &t.Hits, &t.Frames,
		&t.ExtraBalls, &t.PowerUpDrops, &t.Bonuses, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	t.LastPlayed = parseTime(lastPlayed)

	return t, nil
}

// ClearRuns deletes the whole journal.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
