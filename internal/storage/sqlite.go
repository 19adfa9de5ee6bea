// Package storage provides SQLite-based persistence for best scores and
// finished games. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	Variant   string
	SessionID string
	Score     int
	MaxTile   int
	Moves     int
	CreatedAt time.Time
}

// Stats contains aggregated statistics for a variant.
type Stats struct {
	Variant    string
	Games      int
	HighScore  int
	AvgScore   float64
	BestTile   int
	LastPlayed time.Time
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

	// SSH sessions share one store; a single connection serializes writers.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS best_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(variant, score DESC);
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

// BestScore returns the best score stored under key, or 0 if none exists.
func (s *Store) BestScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBestScore stores score under key unless a higher value is already
// there. The stored best never decreases.
func (s *Store) SetBestScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (key, score) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   score = excluded.score,
		   updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best_scores.score`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ResetBestScore deletes the best score stored under key.
func (s *Store) ResetBestScore(key string) error {
	if _, err := s.db.Exec("DELETE FROM best_scores WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot reset best score: %w", err)
	}
	return nil
}

// SaveScore records a finished game and returns the ID of the inserted row.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (variant, session_id, score, max_tile, moves) VALUES (?, ?, ?, ?, ?)",
		e.Variant, e.SessionID, e.Score, e.MaxTile, e.Moves,
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

// TopScores retrieves the top N games for a variant, highest score first.
func (s *Store) TopScores(variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, session_id, score, max_tile, moves, created_at
		 FROM scores
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Variant, &e.SessionID, &e.Score, &e.MaxTile, &e.Moves, &createdAt); err != nil {
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

// ClearScores deletes the game history of a variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a variant.
func (s *Store) Stats(variant string) (*Stats, error) {
	stats := &Stats{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_tile), 0), MAX(created_at)
		 FROM scores WHERE variant = ?`,
		variant,
	).Scan(&stats.Games, &stats.HighScore, &stats.AvgScore, &stats.BestTile, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles DATETIME columns coming back as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
