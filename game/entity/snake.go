package entity

import "snake-classic/game/types"

// Snake holds the body from head (index 0) to tail.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	// Fed makes the next Advance keep the tail, growing the body by one cell.
	Fed bool
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
	}
}

// DefaultSnake returns the two-cell snake every game starts with
func DefaultSnake() *Snake {
	return NewSnake([]types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}}, types.Right)
}

// Advance moves the head one cell in the committed direction
func (s *Snake) Advance() {
	newHead := s.Head().Add(s.Direction.Offset())

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead

	if !s.Fed {
		s.removeTail()
	}
}

func (s *Snake) removeTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// CommitDirection takes the next queued direction as the movement direction
func (s *Snake) CommitDirection(q *CommandQueue) {
	s.Direction = q.Next()
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell equals p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, safe to hold across ticks
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
