package input

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:    {ebiten.KeyLeft, ebiten.KeyA},
	cfg.ActionMoveRight:   {ebiten.KeyRight, ebiten.KeyD},
	cfg.ActionJump:        {ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
	cfg.ActionQuit:        {ebiten.KeyEscape},
	cfg.ActionToggleDebug: {ebiten.KeyF1},
}

// UpdateInput polls the keyboard and updates the Input component.
// Must run before the simulation system.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	input.Advance()

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				break
			}
		}
	}
}

// GetOrCreateInput returns the singleton Input component.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := archetypes.Input.Spawn(e.World)
	return components.Input.Get(entry)
}
