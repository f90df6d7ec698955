package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-game/game/types"
)

// Input is the player intent read for one frame
type Input struct {
	Direction  types.Point // zero when no steering key was pressed
	ToggleMute bool
	Restart    bool
}

var steering = []struct {
	keys []int32
	dir  types.Point
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

func ReadInput() Input {
	in := Input{
		ToggleMute: rl.IsKeyPressed(rl.KeyM),
		Restart:    rl.IsKeyPressed(rl.KeySpace),
	}
	for _, s := range steering {
		for _, k := range s.keys {
			if rl.IsKeyPressed(k) {
				in.Direction = s.dir
			}
		}
	}
	return in
}
