package entity

import (
	"snake-game/game/types"
)

// Snake is the player-controlled body. Body[0] is the tail, the last element is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	next      types.Point
}

// NewSnake builds a snake of the given length with its head at head, trailing to the left
func NewSnake(head types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, 0, length)
	for i := length - 1; i >= 0; i-- {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{
		Body:      body,
		Direction: types.Right, // Start moving right
		next:      types.Right,
	}
}

// SetDirection queues the heading for the next step. Reversing onto the neck is ignored.
func (s *Snake) SetDirection(dir types.Point) {
	if dir == (types.Point{}) {
		return
	}
	if dir.X == -s.Direction.X && dir.Y == -s.Direction.Y {
		return
	}
	s.next = dir
}

// NextDirection returns the queued heading
func (s *Snake) NextDirection() types.Point {
	return s.next
}

// Advance commits the queued heading and returns the cell the head moves into
func (s *Snake) Advance() types.Point {
	s.Direction = s.next
	return s.GetHead().Add(s.Direction)
}

// Move pushes newHead and drops the tail
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
	s.RemoveTail()
}

// Grow duplicates the tail so the snake is one segment longer after the next move
func (s *Snake) Grow() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = append([]types.Point{s.Body[0]}, s.Body...)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// HitsSelf reports whether the head overlaps any other segment
func (s *Snake) HitsSelf() bool {
	head := s.GetHead()
	for _, part := range s.Body[:len(s.Body)-1] {
		if part == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
