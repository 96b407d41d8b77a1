// Package storage provides SQLite-based persistence for shared score
// tables. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/bubbles-vole/snake-game-project/internal/leaderboard"
)

// Store manages the SQLite database connection for score persistence.
// The SSH server opens one Store and shares it across sessions.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single recorded round.
type ScoreEntry struct {
	ID         int64
	Difficulty string
	Name       string
	Score      int
	CreatedAt  time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_difficulty ON scores(difficulty);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(difficulty, score DESC);
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

// SaveScore records a finished round for the given difficulty.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(difficulty, name string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (difficulty, name, score) VALUES (?, ?, ?)",
		difficulty, name, score,
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

// TopScores retrieves the top N scores for the given difficulty.
// Results are ordered by score descending; ties keep submission order.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, name, score, created_at
		 FROM scores
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given difficulty.
// Returns 0 if no scores exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Record adds a finished round to the difficulty's table.
func (s *Store) Record(difficulty, name string, score int) error {
	_, err := s.SaveScore(difficulty, name, score)
	return err
}

// Top returns up to n entries for the difficulty, best first.
func (s *Store) Top(difficulty string, n int) ([]leaderboard.Entry, error) {
	rows, err := s.TopScores(difficulty, n)
	if err != nil {
		return nil, err
	}
	entries := make([]leaderboard.Entry, len(rows))
	for i, r := range rows {
		entries[i] = leaderboard.Entry{Name: r.Name, Score: r.Score}
	}
	return entries, nil
}

// IsHighScore reports whether the score would enter the difficulty's
// top-ten table.
func (s *Store) IsHighScore(difficulty string, score int) (bool, error) {
	top, err := s.TopScores(difficulty, 10)
	if err != nil {
		return false, err
	}
	if len(top) < 10 {
		return true, nil
	}
	return score > top[len(top)-1].Score, nil
}

var _ leaderboard.Store = (*Store)(nil)
