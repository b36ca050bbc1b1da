// Package storage provides a SQLite journal of headless runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal lives in memory only. It exists to aggregate a batch of runs
// with SQL and is discarded when closed; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Journal is an in-memory table of run results.
type Journal struct {
	db *sql.DB
}

// Run is one journaled game.
type Run struct {
	ID         int64
	Seed       int64
	Ticks      int
	Score      int
	Health     int
	Difficulty int
	Flashes    int
	GameOver   bool
	Hash       uint64
}

// Stats aggregates every run in the journal.
type Stats struct {
	Runs          int
	GameOvers     int
	HighScore     int
	AvgScore      float64
	AvgTicks      float64
	MinDifficulty int
	TotalFlashes  int
}

// OpenJournal creates an empty in-memory journal.
func OpenJournal() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open journal: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to journal: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return j, nil
}

// migrate creates the schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			health INTEGER NOT NULL,
			difficulty INTEGER NOT NULL,
			flashes INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL,
			hash TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Close discards the journal.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record appends a run. Returns the ID of the inserted record.
func (j *Journal) Record(r Run) (int64, error) {
	result, err := j.db.Exec(
		`INSERT INTO runs (seed, ticks, score, health, difficulty, flashes, game_over, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Ticks, r.Score, r.Health, r.Difficulty, r.Flashes, r.GameOver,
		strconv.FormatUint(r.Hash, 16),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs by score, ties broken by survival time.
func (j *Journal) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.Query(
		`SELECT id, seed, ticks, score, health, difficulty, flashes, game_over, hash
		 FROM runs
		 ORDER BY score DESC, ticks DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var hash string
		if err := rows.Scan(&r.ID, &r.Seed, &r.Ticks, &r.Score, &r.Health, &r.Difficulty, &r.Flashes, &r.GameOver, &hash); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.Hash, err = strconv.ParseUint(hash, 16, 64); err != nil {
			return nil, fmt.Errorf("storage: bad hash %q: %w", hash, err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates all recorded runs. An empty journal yields zero Stats.
func (j *Journal) Stats() (Stats, error) {
	var s Stats
	err := j.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(game_over), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(AVG(ticks), 0),
		        COALESCE(MIN(difficulty), 0),
		        COALESCE(SUM(flashes), 0)
		 FROM runs`,
	).Scan(&s.Runs, &s.GameOvers, &s.HighScore, &s.AvgScore, &s.AvgTicks, &s.MinDifficulty, &s.TotalFlashes)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot aggregate runs: %w", err)
	}
	return s, nil
}
