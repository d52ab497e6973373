package render

import (
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gamemath"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerDefault ecs.LayerID = iota
)

// DrawLevel fills the sky and draws every platform shifted by the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)
	offset := cameraOffset(e.World)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		c := cfg.BlockBrown
		if components.Platform.Get(entry).Kind == components.PlatformGround {
			c = cfg.GroundBrown
		}
		fillRect(screen, components.Object.Get(entry).Rect(), offset, c)
	})
}

// DrawEntities draws enemies, then the player on top with its hit flash.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	offset := cameraOffset(e.World)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Alive {
			return
		}
		fillRect(screen, components.Object.Get(entry).Rect(), offset, cfg.EnemyGreen)
	})

	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	r := components.Object.Get(player).Rect()
	fillRect(screen, r, offset, cfg.PlayerRed)

	if flash := components.Flash.Get(player); flash.Intensity > 0 {
		fillRect(screen, r, offset, withAlpha(cfg.White, flash.Intensity))
	}
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, offset float64, c color.Color) {
	vector.FillRect(screen, float32(r.X-offset), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// withAlpha scales c to a premultiplied color at the given opacity.
func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	alpha = float32(gamemath.ClampFloat(float64(alpha), 0, 1))
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func cameraOffset(w donburi.World) float64 {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0
	}
	return components.Camera.Get(entry).OffsetX
}
