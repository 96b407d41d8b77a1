package crashlog

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bubbles-vole/snake-game-project/internal/game"
)

func sampleSnapshot() game.Snapshot {
	return game.Snapshot{
		Difficulty:   "medium",
		Score:        120,
		SnakeLen:     15,
		Head:         game.Point{X: 12, Y: 5},
		Body:         []game.Point{{X: 12, Y: 5}, {X: 11, Y: 5}, {X: 10, Y: 5}},
		Dir:          game.DirRight,
		MoveInterval: 300 * time.Millisecond,
		Food:         game.Point{X: 3, Y: 4},
		ObstacleN:    5,
		Obstacles:    []game.Point{{X: 7, Y: 7}, {X: 8, Y: 2}},
	}
}

func TestCollector(t *testing.T) {
	var c Collector

	if c.Latest() != nil {
		t.Error("Fresh collector should hold no snapshot")
	}

	snap := sampleSnapshot()
	c.Set(snap)

	got := c.Latest()
	if got == nil {
		t.Fatal("Latest returned nil after Set")
	}
	if got.Score != 120 || got.Difficulty != "medium" {
		t.Errorf("Latest = %+v, expected the stored snapshot", got)
	}

	snap.Score = 130
	c.Set(snap)
	if c.Latest().Score != 130 {
		t.Error("Set did not replace the previous snapshot")
	}
}

func TestFormat(t *testing.T) {
	snap := sampleSnapshot()
	out := Format(&snap, "runtime error: index out of range", []byte("goroutine 1 [running]:\nmain.main()\n"))

	for _, want := range []string{
		"panic: runtime error: index out of range",
		"difficulty: medium",
		"score: 120",
		"snake length: 15",
		"head: (12, 5)",
		"body: (12, 5) (11, 5) (10, 5)",
		"direction: right",
		"move interval: 300ms",
		"food: (3, 4)",
		"obstacles: 5",
		"obstacle cells: (7, 7) (8, 2)",
		"goroutine 1 [running]:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatWithoutSnapshot(t *testing.T) {
	out := Format(nil, "boom", []byte("stack"))

	if !strings.Contains(out, "no round state captured") {
		t.Errorf("Report missing the no-state note:\n%s", out)
	}
	if !strings.Contains(out, "panic: boom") {
		t.Errorf("Report missing the panic value:\n%s", out)
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	snap := sampleSnapshot()

	path, err := WriteReport(dir, &snap, "boom", []byte("stack trace"))
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "panic: boom") {
		t.Errorf("Report file missing the panic value:\n%s", data)
	}
	if !strings.HasPrefix(strings.TrimPrefix(path, dir), "/crash_") {
		t.Errorf("Report path %q not named crash_<timestamp>", path)
	}
	if !strings.HasSuffix(path, ".txt") {
		t.Errorf("Report path %q missing .txt suffix", path)
	}
}

func TestWriteReportCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/crashes/deep"

	if _, err := WriteReport(dir, nil, "boom", nil); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Report directory not created: %v", err)
	}
}
