// Package storage keeps high scores and finished runs in SQLite.
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

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single high score record.
type ScoreEntry struct {
	ID        int64
	LevelID   string
	Score     int
	CreatedAt time.Time
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWon      Outcome = "won"
	OutcomeGameOver Outcome = "game_over"
	OutcomeQuit     Outcome = "quit"
)

// Run is one finished playthrough of a level.
type Run struct {
	ID        int64
	LevelID   string
	Score     int
	Outcome   Outcome
	Ticks     int
	LivesLeft int
	Seed      int64
	Player    string
	CreatedAt time.Time
}

// LevelStats aggregates the runs recorded for a level.
type LevelStats struct {
	LevelID    string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level_id);
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

// SaveScore records a new score for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(levelID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (level_id, score) VALUES (?, ?)",
		levelID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given level, best first.
// An empty levelID ranks every level together.
func (s *Store) TopScores(levelID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, score, created_at
		 FROM scores
		 WHERE ? = '' OR level_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given level.
// Returns 0 if no scores exist.
func (s *Store) HighScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE level_id = ?",
		levelID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes the scores and runs of the given level.
func (s *Store) ClearScores(levelID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveRun records a finished run. Runs that ended by winning or losing
// also enter the scoreboard; abandoned runs are history only.
func (s *Store) SaveRun(run Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec(
		`INSERT INTO runs (level_id, score, outcome, ticks, lives_left, seed, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.LevelID, run.Score, string(run.Outcome), run.Ticks, run.LivesLeft, run.Seed, run.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if run.Score > 0 && run.Outcome != OutcomeQuit {
		if _, err := tx.Exec("INSERT INTO scores (level_id, score) VALUES (?, ?)", run.LevelID, run.Score); err != nil {
			return 0, fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs, newest first. An empty levelID
// includes every level.
func (s *Store) RecentRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, score, outcome, ticks, lives_left, seed, player, created_at
		 FROM runs
		 WHERE ? = '' OR level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Score, &outcome, &r.Ticks, &r.LivesLeft, &r.Seed, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates the runs of one level. A level without runs yields
// zero stats and no error.
func (s *Store) Stats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM runs WHERE level_id = ?`,
		string(OutcomeWon), levelID,
	).Scan(&stats.Runs, &stats.Wins, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE level_id = ? ORDER BY id DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// AllStats returns the stats of every level that has runs, keyed by level.
func (s *Store) AllStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), MAX(created_at)
		 FROM runs
		 GROUP BY level_id`,
		string(OutcomeWon),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Runs, &st.Wins, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime accepts both the driver's time.Time and SQLite's text format.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
