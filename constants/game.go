package constants

import "time"

// Game Loop Timing Constants
const (
	// TargetTickDelay is the fixed movement cadence of the snake
	TargetTickDelay = 1000 * time.Millisecond

	// InputBufferSize is the capacity of the channel between the input pump and the loop
	InputBufferSize = 64
)

// Snake Geometry
const (
	// SnakeLength is the fixed segment count, there is no growth
	SnakeLength = 3

	// MinRoomHeight is the smallest terminal height that fits the initial body
	// Head starts at height-4
	MinRoomHeight = 4

	// MinRoomWidth is the smallest terminal width
	MinRoomWidth = 1

	// SnakeGlyph is drawn for every body segment
	SnakeGlyph = 'x'
)

// Direction key bindings (home-row layout, not WASD)
const (
	KeyTurnUp    = 'u'
	KeyTurnLeft  = 'n'
	KeyTurnRight = 'i'
	KeyTurnDown  = 'e'
)
