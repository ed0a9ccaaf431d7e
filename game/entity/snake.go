package entity

import (
	"snake-arcade/game/types"
)

// Snake is an ordered body, head first. It is never empty and holds no
// duplicate cells while alive.
type Snake struct {
	Body []types.Point
}

// NewSnake lays out length cells in a straight line trailing behind head,
// opposite to dir.
func NewSnake(head types.Point, dir types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, 0, length)
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return &Snake{Body: body}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move puts newHead in front of the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Contains reports whether any body cell equals p.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
