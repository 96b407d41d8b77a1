// Package crashlog turns a panic during play into a report file. The tick
// loop publishes a snapshot of every frame to a Collector; the recover
// handler writes the last one next to the panic value and stack, so a
// crash leaves enough state to reproduce the board.
package crashlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bubbles-vole/snake-game-project/internal/game"
)

// Collector holds the most recent round snapshot. It is written from the
// tick loop and read from the recover handler, which may run on another
// goroutine.
type Collector struct {
	mu   sync.Mutex
	snap *game.Snapshot
}

// Set records the latest round state.
func (c *Collector) Set(snap game.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = &snap
}

// Latest returns the last recorded snapshot, or nil before the first tick.
func (c *Collector) Latest() *game.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// WriteReport writes a crash report under dir and returns the file path.
// The directory is created if needed; snap may be nil when the crash hit
// before the first tick.
func WriteReport(dir string, snap *game.Snapshot, panicVal any, stack []byte) (string, error) {
	// Expand ~ to home directory
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("crashlog: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crashlog: cannot create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("crash_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(Format(snap, panicVal, stack)), 0o644); err != nil {
		return "", fmt.Errorf("crashlog: cannot write %s: %w", path, err)
	}
	return path, nil
}

// Format renders the report text.
func Format(snap *game.Snapshot, panicVal any, stack []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "snake crash report\n")
	fmt.Fprintf(&b, "time: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "panic: %v\n\n", panicVal)

	if snap == nil {
		b.WriteString("no round state captured\n\n")
	} else {
		fmt.Fprintf(&b, "difficulty: %s\n", snap.Difficulty)
		fmt.Fprintf(&b, "score: %d\n", snap.Score)
		fmt.Fprintf(&b, "snake length: %d\n", snap.SnakeLen)
		fmt.Fprintf(&b, "head: %s\n", formatCell(snap.Head))
		fmt.Fprintf(&b, "body: %s\n", formatCells(snap.Body))
		fmt.Fprintf(&b, "direction: %s\n", snap.Dir)
		fmt.Fprintf(&b, "move interval: %s\n", snap.MoveInterval)
		fmt.Fprintf(&b, "food: %s\n", formatCell(snap.Food))
		fmt.Fprintf(&b, "obstacles: %d\n", snap.ObstacleN)
		fmt.Fprintf(&b, "obstacle cells: %s\n", formatCells(snap.Obstacles))
		fmt.Fprintf(&b, "game over: %v\n\n", snap.Over)
	}

	b.WriteString("stack:\n")
	b.Write(stack)
	if len(stack) > 0 && stack[len(stack)-1] != '\n' {
		b.WriteByte('\n')
	}
	return b.String()
}

func formatCell(p game.Point) string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func formatCells(cells []game.Point) string {
	if len(cells) == 0 {
		return "none"
	}
	parts := make([]string, len(cells))
	for i, p := range cells {
		parts[i] = formatCell(p)
	}
	return strings.Join(parts, " ")
}
