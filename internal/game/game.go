// Package game implements the snake engine: a bounded grid with a wall
// border, a snake that grows by eating food, randomly placed obstacles, and
// wall-clock move timing. The board math lives in pure functions over an
// immutable State; Game is the thin controller that owns the current state,
// the RNG, and the move clock.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bubbles-vole/snake-game-project/internal/core"
)

// ErrBoardTooSmall is returned when the terminal cannot hold the walls,
// the initial snake, and one food cell.
var ErrBoardTooSmall = errors.New("game: board too small")

// initialLength is the snake's starting segment count.
const initialLength = 3

// Config describes one round: board size, tier parameters, and the RNG seed.
type Config struct {
	Width        int
	Height       int
	Obstacles    int
	MoveInterval time.Duration
	Difficulty   string // tier label, shown in the HUD and kept in snapshots
	Seed         int64
}

// Game drives a single round. It owns the current State, the move clock,
// the RNG, and the one-slot direction buffer; all board transitions go
// through the pure Step/CheckCollision functions.
type Game struct {
	state      State
	rng        *rand.Rand
	clock      *MoveClock
	pending    Direction
	hasPending bool
	difficulty string
}

// New sets up a round: the snake at board center heading right, then the
// tier's obstacles, then the first food. Placement failures surface as
// wrapped ErrPlacementExhausted; undersized boards as ErrBoardTooSmall.
func New(cfg Config, start time.Time) (*Game, error) {
	// The initial snake spans columns W/2-2 .. W/2 on row H/2, all of
	// which must be interior cells.
	if cfg.Width < 2+initialLength+1 || cfg.Height < 3 {
		return nil, fmt.Errorf("game: %dx%d terminal: %w", cfg.Width, cfg.Height, ErrBoardTooSmall)
	}

	grid := Grid{W: cfg.Width, H: cfg.Height}
	cx, cy := cfg.Width/2, cfg.Height/2
	snake := make([]Point, initialLength)
	for i := range snake {
		snake[i] = Point{X: cx - i, Y: cy}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	obstacles, err := PlaceObstacles(rng, grid, snake, cfg.Obstacles)
	if err != nil {
		return nil, fmt.Errorf("game: cannot place %d obstacles on %dx%d board: %w",
			cfg.Obstacles, cfg.Width, cfg.Height, err)
	}

	state := State{
		Grid:      grid,
		Snake:     snake,
		Dir:       DirRight,
		Obstacles: obstacles,
	}
	food, err := PlaceFood(rng, state)
	if err != nil {
		return nil, fmt.Errorf("game: cannot place food: %w", err)
	}
	state.Food = food

	return &Game{
		state:      state,
		rng:        rng,
		clock:      NewMoveClock(cfg.MoveInterval, start),
		difficulty: cfg.Difficulty,
	}, nil
}

// ApplyAction buffers a direction key. The buffer holds one key; a later
// key before the next tick replaces an earlier one. Advance consumes it.
func (g *Game) ApplyAction(a core.Action) {
	if g.state.Over {
		return
	}
	var d Direction
	switch a {
	case core.ActionUp:
		d = DirUp
	case core.ActionDown:
		d = DirDown
	case core.ActionLeft:
		d = DirLeft
	case core.ActionRight:
		d = DirRight
	default:
		return
	}
	g.pending = d
	g.hasPending = true
}

// Advance runs one tick at the given wall-clock instant: consume the
// buffered key, decide whether a move fires, apply it, and resolve the
// outcome. Returns true while the round is still live.
//
// A key matching the current heading forces an early move; a turn applies
// the new heading and also forces; a reversal onto the neck is dropped
// without any effect. Forced moves are still gated by MinForceGap, but a
// suppressed force keeps the turned heading for the next scheduled move.
func (g *Game) Advance(now time.Time) bool {
	if g.state.Over {
		return false
	}

	force := false
	if g.hasPending {
		g.hasPending = false
		switch g.pending {
		case g.state.Dir.Opposite():
			// Dropped: no turn, no move.
		case g.state.Dir:
			force = true
		default:
			g.state.Dir = g.pending
			force = true
		}
	}

	if !g.clock.ShouldMove(now, force) {
		return true
	}

	next, ate := Step(g.state, g.state.Dir)
	if CheckCollision(next) {
		next.Over = true
		g.state = next
		return false
	}
	if ate {
		food, err := PlaceFood(g.rng, next)
		if err != nil {
			// Nowhere left to put food: the board is full, the round
			// ends with the score standing.
			next.Over = true
			g.state = next
			return false
		}
		next.Food = food
	}
	g.state = next
	return true
}

// State returns the current board state.
func (g *Game) State() State {
	return g.state
}

// Over reports whether the round has ended.
func (g *Game) Over() bool {
	return g.state.Over
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// Difficulty returns the tier label the round was started with.
func (g *Game) Difficulty() string {
	return g.difficulty
}

// MoveInterval returns the tier's scheduled move interval.
func (g *Game) MoveInterval() time.Duration {
	return g.clock.Interval()
}
