package render

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMarginX = 8
	hudMarginY = 16
)

// DrawHUD prints, with the debug overlay on, the camera offset, grounded state, live enemy count and frame.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	grounded := components.Physics.Get(player).OnGround

	enemies := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Alive {
			enemies++
		}
	})

	var frame uint64
	if level, ok := components.Level.First(e.World); ok {
		frame = components.Level.Get(level).Frame
	}

	line := fmt.Sprintf("camera %d  grounded %t  enemies %d  frame %d",
		int(cameraOffset(e.World)), grounded, enemies, frame)
	text.Draw(screen, line, fonts.Small.Get(), hudMarginX, hudMarginY, cfg.HUDText)
}
