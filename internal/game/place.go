package game

import (
	"errors"
	"math/rand"

	"github.com/bubbles-vole/snake-game-project/internal/core"
)

// ErrPlacementExhausted is returned when rejection sampling cannot find a
// free cell within the retry budget. At setup this aborts the round; after
// a food pickup it means the board is essentially full.
var ErrPlacementExhausted = errors.New("game: placement retries exhausted")

// maxPlaceAttempts bounds rejection sampling so a crowded board fails fast
// instead of spinning.
const maxPlaceAttempts = 1000

// PlaceFood picks a random interior cell occupied by neither the snake nor
// an obstacle.
func PlaceFood(rng *rand.Rand, s State) (Point, error) {
	return samplePoint(rng, s.Grid.Interior(), func(p Point) bool {
		return !s.OnSnake(p) && !s.OnObstacle(p)
	})
}

// PlaceObstacles picks count distinct cells from the obstacle field, none
// on the snake.
func PlaceObstacles(rng *rand.Rand, g Grid, snake []Point, count int) ([]Point, error) {
	obstacles := make([]Point, 0, count)
	for len(obstacles) < count {
		p, err := samplePoint(rng, g.ObstacleField(), func(p Point) bool {
			return !contains(snake, p) && !contains(obstacles, p)
		})
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, p)
	}
	return obstacles, nil
}

// samplePoint draws uniform random cells from the field until the predicate
// accepts one or the attempt budget runs out.
func samplePoint(rng *rand.Rand, field core.Rect, free func(Point) bool) (Point, error) {
	if field.Empty() {
		return Point{}, ErrPlacementExhausted
	}
	for i := 0; i < maxPlaceAttempts; i++ {
		p := Point{
			X: field.X + rng.Intn(field.W),
			Y: field.Y + rng.Intn(field.H),
		}
		if free(p) {
			return p, nil
		}
	}
	return Point{}, ErrPlacementExhausted
}

func contains(cells []Point, p Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
