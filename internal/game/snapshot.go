package game

import "time"

// snapshotPrefix caps how many snake segments and obstacles a snapshot
// carries; full bodies can span hundreds of cells.
const snapshotPrefix = 8

// Snapshot is a read-only capture of a round: crash reports embed it, and
// determinism tests compare them.
type Snapshot struct {
	Difficulty   string
	Score        int
	SnakeLen     int
	Head         Point
	Body         []Point // leading segments, head first
	Dir          Direction
	MoveInterval time.Duration
	Food         Point
	ObstacleN    int
	Obstacles    []Point // leading obstacles, placement order
	Over         bool
}

// Snapshot captures the current round state.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Difficulty:   g.difficulty,
		Score:        s.Score,
		SnakeLen:     len(s.Snake),
		Head:         s.Head(),
		Body:         prefix(s.Snake, snapshotPrefix),
		Dir:          s.Dir,
		MoveInterval: g.clock.Interval(),
		Food:         s.Food,
		ObstacleN:    len(s.Obstacles),
		Obstacles:    prefix(s.Obstacles, snapshotPrefix),
		Over:         s.Over,
	}
}

func prefix(cells []Point, n int) []Point {
	if len(cells) < n {
		n = len(cells)
	}
	out := make([]Point, n)
	copy(out, cells[:n])
	return out
}
