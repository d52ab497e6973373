package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gamemath"
	"github.com/yohamta/donburi"
)

// SetPlayerVelocity sets the horizontal speed for this frame. It replaces the
// previous value rather than adding to it.
func SetPlayerVelocity(player *donburi.Entry, speedX float64) {
	components.Physics.Get(player).SpeedX = speedX
}

// Jump launches the player if it is standing on a platform. There is no
// double jump and no buffering.
func Jump(player *donburi.Entry) bool {
	physics := components.Physics.Get(player)
	if !physics.OnGround {
		return false
	}
	physics.SpeedY = cfg.Player.JumpVelocity
	return true
}

// UpdatePlayer moves the player one frame: horizontal move and sweep, then
// gravity, vertical move and sweep. OnGround only survives if the vertical
// sweep lands the player again.
func UpdatePlayer(player *donburi.Entry, platforms *PlatformSet) {
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)
	rects := platforms.Rects()

	r := obj.Rect()

	// Horizontal movement
	r.X += physics.SpeedX
	r, _, _ = gamemath.Sweep(r, physics.SpeedX, 0, rects, physics.SpeedY)

	// Vertical movement
	physics.SpeedY += cfg.Physics.Gravity
	r.Y += physics.SpeedY
	physics.OnGround = false
	r, physics.SpeedY, physics.OnGround = gamemath.Sweep(r, 0, physics.SpeedY, rects, physics.SpeedY)

	obj.MoveTo(r)
}

// RespawnPlayer puts the player back at its spawn point. Velocity is left as is.
func RespawnPlayer(player *donburi.Entry) {
	spawn := components.Player.Get(player).Spawn
	obj := components.Object.Get(player)
	r := obj.Rect()
	r.X, r.Y = spawn.X, spawn.Y
	obj.MoveTo(r)
}
