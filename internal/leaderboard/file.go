package leaderboard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists a Board as a JSON file. Reads never fail: a missing
// or unparseable file is an empty board, so a fresh install and a damaged
// file both start clean.
type FileStore struct {
	path string
}

// NewFileStore prepares a store at the given path, creating parent
// directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	// Expand ~ to home directory
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("leaderboard: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}

	return &FileStore{path: path}, nil
}

// Path returns the resolved file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the board from disk.
func (f *FileStore) Load() Board {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return Board{}
	}
	var b Board
	if err := json.Unmarshal(data, &b); err != nil || b == nil {
		return Board{}
	}
	return b
}

// Save writes the board to disk.
func (f *FileStore) Save(b Board) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode board: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", f.path, err)
	}
	return nil
}

// Record adds a finished round and persists the board.
func (f *FileStore) Record(difficulty, name string, score int) error {
	b := f.Load()
	b.Add(difficulty, name, score)
	return f.Save(b)
}

// Top returns up to n entries for the difficulty, best first.
func (f *FileStore) Top(difficulty string, n int) ([]Entry, error) {
	return f.Load().Top(difficulty, n), nil
}

// IsHighScore reports whether the score would enter the table.
func (f *FileStore) IsHighScore(difficulty string, score int) (bool, error) {
	return f.Load().IsHighScore(difficulty, score), nil
}

var _ Store = (*FileStore)(nil)
