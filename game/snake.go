package game

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
)

// Canvas is the output surface a Snake draws itself onto
type Canvas interface {
	// Put writes a single glyph at column x, row y
	Put(x, y int, r rune)
	// Flush pushes pending output to the terminal
	Flush()
}

// Snake is a fixed-length body moving on the grid
// body[0] is the head, the last element is the tail
type Snake struct {
	body      []Point
	direction Direction
}

// NewSnake places a vertical three-segment snake centered horizontally near the bottom of a width x height room, facing up
func NewSnake(width, height uint16) (*Snake, error) {
	if height < constants.MinRoomHeight || width < constants.MinRoomWidth {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrRoomTooSmall, width, height, constants.MinRoomWidth, constants.MinRoomHeight)
	}

	mid := width / 2
	body := make([]Point, constants.SnakeLength)
	for i := range body {
		// Head is the topmost segment at height-4, tail at height-2
		body[i] = Point{X: mid, Y: height - uint16(constants.SnakeLength+1-i)}
	}

	return &Snake{
		body:      body,
		direction: Up,
	}, nil
}

// Turn sets the facing for the next step
// There is no guard against reversing onto the body
func (s *Snake) Turn(d Direction) {
	s.direction = d
}

// Step advances the head one cell and drops the tail
// On ErrOutOfBounds the body is left unchanged
func (s *Snake) Step() error {
	next, ok := s.body[0].next(s.direction)
	if !ok {
		return ErrOutOfBounds
	}

	// Shift toward the tail, overwriting it, then place the new head
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
	return nil
}

// Draw writes the glyph for every segment, flushing after each one
// Previous positions are not cleared
func (s *Snake) Draw(c Canvas) {
	for _, p := range s.body {
		c.Put(int(p.X), int(p.Y), constants.SnakeGlyph)
		c.Flush()
	}
}

// Head returns the head position
func (s *Snake) Head() Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current facing
func (s *Snake) Direction() Direction {
	return s.direction
}
