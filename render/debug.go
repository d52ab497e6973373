package render

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	offset := cameraOffset(e.World)
	viewW := float64(screen.Bounds().Dx())

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < offset || obj.X > offset+viewW {
			continue
		}

		x := obj.X - offset
		y := obj.Y

		c := cfg.White
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.DebugSolid
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.DebugPlayer
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = cfg.DebugEnemy
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
