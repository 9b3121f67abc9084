package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

// turnKeys binds runes to facings
var turnKeys = map[rune]game.Direction{
	constants.KeyTurnUp:    game.Up,
	constants.KeyTurnLeft:  game.Left,
	constants.KeyTurnRight: game.Right,
	constants.KeyTurnDown:  game.Down,
}

// DirectionForRune returns the facing bound to r
func DirectionForRune(r rune) (game.Direction, bool) {
	d, ok := turnKeys[r]
	return d, ok
}
