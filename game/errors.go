package game

import "errors"

var (
	// ErrOutOfBounds is returned by Step when the head would cross the zero edge of the grid
	ErrOutOfBounds = errors.New("snake out of bounds")

	// ErrRoomTooSmall is returned by NewSnake when the grid cannot hold the initial body
	ErrRoomTooSmall = errors.New("room too small for snake")
)
