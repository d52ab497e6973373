package world

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
)

// Input is the per-frame input snapshot consumed by Step. Left and Right are
// held state; Jump is true only on the frame the key went down.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// InputFromActions maps polled action state to a step input.
func InputFromActions(in *components.InputData) Input {
	if in == nil {
		return Input{}
	}
	return Input{
		Left:  in.Action(cfg.ActionMoveLeft).Pressed,
		Right: in.Action(cfg.ActionMoveRight).Pressed,
		Jump:  in.Action(cfg.ActionJump).JustPressed,
	}
}
