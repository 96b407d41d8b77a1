package game

// FoodPoints is the score awarded per food eaten.
const FoodPoints = 10

// State is one tick's complete board position. Step returns a fresh State
// and never mutates its input, so any tick's state can be held as a
// point-in-time snapshot.
type State struct {
	Grid      Grid
	Snake     []Point // head at index 0
	Dir       Direction
	Food      Point
	Obstacles []Point
	Score     int
	Over      bool
}

// Head returns the snake's head cell. The snake is never empty.
func (s State) Head() Point {
	return s.Snake[0]
}

// OnSnake reports whether any segment occupies p.
func (s State) OnSnake(p Point) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// OnObstacle reports whether an obstacle occupies p.
func (s State) OnObstacle(p Point) bool {
	for _, o := range s.Obstacles {
		if o == p {
			return true
		}
	}
	return false
}

// Step advances the snake one cell along dir: the new head is prepended and,
// unless the head landed on food, the tail is dropped. Eating keeps the tail
// for one move (net growth of one) and adds FoodPoints to the score. The
// eaten food stays in place; the caller places the next one.
//
// Step applies no legality checks. Collision outcomes of the new position
// are the caller's concern, via CheckCollision.
func Step(s State, dir Direction) (State, bool) {
	next := s
	next.Dir = dir
	head := s.Head().Add(dir.Delta())

	body := make([]Point, 0, len(s.Snake)+1)
	body = append(body, head)
	body = append(body, s.Snake...)

	ate := head == s.Food
	if ate {
		next.Score += FoodPoints
	} else {
		body = body[:len(body)-1]
	}
	next.Snake = body
	return next, ate
}

// CheckCollision reports whether the state's head position is fatal: on a
// wall, on an obstacle, or on any snake segment other than the head itself.
// Evaluated on the post-Step state, the cell a tail just vacated is no
// longer in the body and correctly does not collide.
func CheckCollision(s State) bool {
	head := s.Head()
	if s.Grid.IsWall(head) {
		return true
	}
	for _, seg := range s.Snake[1:] {
		if seg == head {
			return true
		}
	}
	return s.OnObstacle(head)
}
