package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = map[types.Direction]int32{
	types.Up:    rl.KeyW,
	types.Right: rl.KeyD,
	types.Down:  rl.KeyS,
	types.Left:  rl.KeyA,
}

// Keyboard reads held keys from the raylib window
type Keyboard struct{}

func (Keyboard) DirectionHeld(dir types.Direction) bool {
	key, ok := directionKeys[dir]
	return ok && rl.IsKeyDown(key)
}

func (Keyboard) RestartHeld() bool {
	return rl.IsKeyDown(rl.KeyEnter)
}
