package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/gamemath"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera centres the camera on the player horizontally, clamped so the
// viewport never leaves the level.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	camera.OffsetX = gamemath.ClampCamera(playerObject.Rect().CenterX(), level.ViewportWidth, level.Width)
}
