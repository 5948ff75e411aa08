package entity

import (
	"snake-classic/game/types"
)

// Snake is the player's body, head first.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction
	PendingGrowth bool // Next Advance keeps the tail

	initial []types.Point
}

// NewSnake builds a snake laid out along initial (head first) heading right.
func NewSnake(initial []types.Point) *Snake {
	s := &Snake{
		initial: append([]types.Point(nil), initial...),
	}
	s.Reset()
	return s
}

// Reset puts the snake back into its construction state.
func (s *Snake) Reset() {
	s.Body = append([]types.Point(nil), s.initial...)
	s.Direction = types.Right
	s.PendingGrowth = false
}

// Advance moves the head one cell along Direction and drops the tail unless
// growth is pending. Bounds and self collisions are left to the caller.
func (s *Snake) Advance() {
	newHead := s.GetHead().Add(s.Direction.ToPoint())

	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	body = append(body, s.Body...)

	if s.PendingGrowth {
		s.PendingGrowth = false
	} else {
		body = body[:len(body)-1]
	}
	s.Body = body
}

// Grow schedules one extra segment for the next Advance.
func (s *Snake) Grow() {
	s.PendingGrowth = true
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Tail returns the body without the head.
func (s *Snake) Tail() []types.Point {
	return s.Body[1:]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection turns the snake unless dir lies on the current axis.
// It reports whether the direction changed.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if s.Direction.SameAxis(dir) {
		return false
	}
	s.Direction = dir
	return true
}
