package game

import (
	"github.com/bubbles-vole/snake-game-project/internal/core"
)

// Direction is the snake's movement heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Delta returns the one-cell offset a move in this direction applies.
func (d Direction) Delta() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// Opposite returns the reversal of this direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirDown
	}
}

// Point is a board cell. X is the column, Y the row; (0, 0) is the top-left
// wall corner.
type Point struct {
	X, Y int
}

// Add returns the point offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid is the fixed playfield: W x H cells whose outermost ring is wall.
// Dimensions never change during a round.
type Grid struct {
	W, H int
}

// IsWall reports whether p is on the border ring. Cells beyond the border
// also count as wall.
func (g Grid) IsWall(p Point) bool {
	return p.X <= 0 || p.X >= g.W-1 || p.Y <= 0 || p.Y >= g.H-1
}

// Interior returns the playable area inside the walls. Food may spawn on
// any interior cell.
func (g Grid) Interior() core.Rect {
	return core.NewRect(1, 1, g.W-2, g.H-2)
}

// ObstacleField returns the obstacle spawn area, inset one cell further
// than the interior. Obstacles never sit directly against a wall, so a
// corridor always remains.
func (g Grid) ObstacleField() core.Rect {
	return core.NewRect(2, 2, g.W-4, g.H-4)
}
