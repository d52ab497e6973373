package world

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/stretchr/testify/assert"
)

func TestInputFromActions(t *testing.T) {
	var in components.InputData

	in.Current[cfg.ActionMoveLeft] = true
	in.Current[cfg.ActionJump] = true
	assert.Equal(t, Input{Left: true, Jump: true}, InputFromActions(&in))

	// Holding jump across frames only jumps once.
	in.Advance()
	in.Current[cfg.ActionMoveRight] = true
	in.Current[cfg.ActionJump] = true
	assert.Equal(t, Input{Right: true}, InputFromActions(&in))

	assert.Equal(t, Input{}, InputFromActions(nil))
}
