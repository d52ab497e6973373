package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/stretchr/testify/assert"
)

func TestUpdatePlayerLandsOnPlatform(t *testing.T) {
	w, platforms := newTestWorld(t, groundStrip(200)...)
	player := placePlayer(w, 10, 318, 0, 5)

	UpdatePlayer(player, platforms)

	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)
	assert.Equal(t, 360.0, obj.Rect().Bottom())
	assert.Zero(t, physics.SpeedY)
	assert.True(t, physics.OnGround)
}

func TestUpdatePlayerFallsWithGravity(t *testing.T) {
	w, platforms := newTestWorld(t, groundStrip(200)...)
	player := placePlayer(w, 10, 100, 0, 0)

	for i := 1; i <= 3; i++ {
		UpdatePlayer(player, platforms)
		assert.InDelta(t, cfg.Physics.Gravity*float64(i), components.Physics.Get(player).SpeedY, 1e-9)
		assert.False(t, components.Physics.Get(player).OnGround)
	}
	assert.InDelta(t, 100+0.8+1.6+2.4, components.Object.Get(player).Y, 1e-9)
}

func TestUpdatePlayerStopsAgainstWall(t *testing.T) {
	w, platforms := newTestWorld(t, testRect{x: 100, y: 0, w: 40, h: 400})

	right := placePlayer(w, 57, 100, 5, 0)
	UpdatePlayer(right, platforms)
	assert.Equal(t, 100.0, components.Object.Get(right).Rect().Right())

	left := placePlayer(w, 143, 100, -5, 0)
	UpdatePlayer(left, platforms)
	assert.Equal(t, 140.0, components.Object.Get(left).Rect().Left())
}

func TestUpdatePlayerBumpsHead(t *testing.T) {
	w, platforms := newTestWorld(t, testRect{x: 300, y: 250, w: 40, h: 40})
	player := placePlayer(w, 300, 295, 0, -10)

	UpdatePlayer(player, platforms)

	physics := components.Physics.Get(player)
	assert.Equal(t, 290.0, components.Object.Get(player).Y)
	assert.Zero(t, physics.SpeedY)
	assert.False(t, physics.OnGround)
}

func TestJumpRequiresGround(t *testing.T) {
	w, _ := newTestWorld(t)
	player := placePlayer(w, 0, 0, 0, 3.2)

	assert.False(t, Jump(player))
	assert.Equal(t, 3.2, components.Physics.Get(player).SpeedY)

	components.Physics.Get(player).OnGround = true
	assert.True(t, Jump(player))
	assert.Equal(t, cfg.Player.JumpVelocity, components.Physics.Get(player).SpeedY)
}

func TestJumpLeavesGroundNextFrame(t *testing.T) {
	w, platforms := newTestWorld(t, groundStrip(200)...)
	player := placePlayer(w, 40, 320, 0, 0)

	UpdatePlayer(player, platforms)
	assert.True(t, components.Physics.Get(player).OnGround)

	assert.True(t, Jump(player))
	UpdatePlayer(player, platforms)

	physics := components.Physics.Get(player)
	assert.False(t, physics.OnGround)
	assert.InDelta(t, cfg.Player.JumpVelocity+cfg.Physics.Gravity, physics.SpeedY, 1e-9)
	assert.Less(t, components.Object.Get(player).Y, 320.0)
}

func TestRestingPlayerIsFixedPoint(t *testing.T) {
	w, platforms := newTestWorld(t, groundStrip(200)...)
	player := placePlayer(w, 40, 320, 0, 0)

	for i := 0; i < 120; i++ {
		UpdatePlayer(player, platforms)
		obj := components.Object.Get(player)
		physics := components.Physics.Get(player)
		assert.Equal(t, 40.0, obj.X)
		assert.Equal(t, 320.0, obj.Y)
		assert.Zero(t, physics.SpeedX)
		assert.Zero(t, physics.SpeedY)
		assert.True(t, physics.OnGround)
	}
}

func TestSetPlayerVelocityReplaces(t *testing.T) {
	w, _ := newTestWorld(t)
	player := placePlayer(w, 0, 0, 0, 0)

	SetPlayerVelocity(player, 5)
	SetPlayerVelocity(player, -5)
	assert.Equal(t, -5.0, components.Physics.Get(player).SpeedX)
}

func TestRespawnPlayerKeepsVelocity(t *testing.T) {
	w, _ := newTestWorld(t)
	player := placePlayer(w, 100, 320, 5, 2)
	components.Object.Get(player).MoveTo(components.Object.Get(player).Rect().Translate(300, -100))

	RespawnPlayer(player)

	obj := components.Object.Get(player)
	assert.Equal(t, 100.0, obj.X)
	assert.Equal(t, 320.0, obj.Y)
	assert.Equal(t, 2.0, components.Physics.Get(player).SpeedY)
}
