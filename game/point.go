package game

import "fmt"

// Point is a cell on the terminal grid, (0,0) is the top-left corner
type Point struct {
	X uint16
	Y uint16
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// next returns the neighbor in direction d, ok is false when the move would go below zero on either axis
// Upper bounds are not checked
func (p Point) next(d Direction) (Point, bool) {
	dx, dy := d.Delta()
	if p.X == 0 && dx < 0 {
		return Point{}, false
	}
	if p.Y == 0 && dy < 0 {
		return Point{}, false
	}
	return Point{
		X: uint16(int(p.X) + dx),
		Y: uint16(int(p.Y) + dy),
	}, true
}
