// Package leaderboard keeps per-difficulty high score tables: up to ten
// entries each, sorted by score descending, persisted as a small JSON file.
package leaderboard

import (
	"fmt"
	"sort"
	"strings"
)

// maxEntries is the table depth per difficulty.
const maxEntries = 10

// MaxNameLen bounds player names.
const MaxNameLen = 20

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Board maps a difficulty name to its score table, best first.
type Board map[string][]Entry

// IsHighScore reports whether a score would enter the difficulty's table:
// the table has room, or the score beats its lowest entry.
func (b Board) IsHighScore(difficulty string, score int) bool {
	entries := b[difficulty]
	if len(entries) < maxEntries {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// Add inserts an entry and re-ranks the table. Ties keep insertion order,
// so an older score outranks an equal newer one. The table is truncated
// to its depth.
func (b Board) Add(difficulty, name string, score int) {
	entries := append(b[difficulty], Entry{Name: name, Score: score})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	b[difficulty] = entries
}

// Top returns up to n entries for the difficulty, best first.
func (b Board) Top(difficulty string, n int) []Entry {
	entries := b[difficulty]
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]Entry, n)
	copy(out, entries[:n])
	return out
}

// NormalizeName validates a player name and folds it to upper case. Names
// are 1 to MaxNameLen characters, letters and digits only.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("leaderboard: name is empty")
	}
	if len(name) > MaxNameLen {
		return "", fmt.Errorf("leaderboard: name longer than %d characters", MaxNameLen)
	}
	for _, r := range name {
		if !isAlnum(r) {
			return "", fmt.Errorf("leaderboard: name contains %q, letters and digits only", r)
		}
	}
	return strings.ToUpper(name), nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
