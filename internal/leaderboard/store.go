package leaderboard

// Store is the score sink the session drives: the local JSON file in
// terminal play, a shared database under the SSH server.
type Store interface {
	// Record adds a finished round to the difficulty's table.
	Record(difficulty, name string, score int) error
	// Top returns up to n entries for the difficulty, best first.
	Top(difficulty string, n int) ([]Entry, error)
	// IsHighScore reports whether the score would enter the table.
	IsHighScore(difficulty string, score int) (bool, error)
}
