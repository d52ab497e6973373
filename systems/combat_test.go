package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gamemath"
	"github.com/automoto/platformer/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestIsStomp(t *testing.T) {
	enemy := gamemath.NewRect(400, 320, 40, 40) // centre y = 340

	tests := []struct {
		name   string
		player gamemath.Rect
		speedY float64
		want   bool
	}{
		{"falling onto top", gamemath.NewRect(400, 305, 40, 40), 3, true},
		{"exactly at tolerance", gamemath.NewRect(400, 310, 40, 40), 3, true},
		{"falling but too low", gamemath.NewRect(400, 311, 40, 40), 3, false},
		{"rising", gamemath.NewRect(400, 305, 40, 40), -3, false},
		{"still", gamemath.NewRect(400, 305, 40, 40), 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsStomp(tc.player, enemy, tc.speedY))
		})
	}
}

func TestResolveEnemyContactStomp(t *testing.T) {
	w, _ := newTestWorld(t)
	player := placePlayer(w, 400, 305, 0, 3)
	enemy := factory.CreateEnemy(w, 400, 320)

	assert.Equal(t, ContactStomp, ResolveEnemyContact(player, enemy))
	assert.False(t, components.Enemy.Get(enemy).Alive)
	assert.Equal(t, cfg.Player.JumpVelocity/2, components.Physics.Get(player).SpeedY)
	assert.Equal(t, 305.0, components.Object.Get(player).Y)
}

func TestResolveEnemyContactHit(t *testing.T) {
	w, _ := newTestWorld(t)
	player := placePlayer(w, 100, 320, 0, 0)
	components.Object.Get(player).MoveTo(gamemath.NewRect(420, 320, 40, 40))
	enemy := factory.CreateEnemy(w, 400, 320)

	assert.Equal(t, ContactHit, ResolveEnemyContact(player, enemy))
	assert.True(t, components.Enemy.Get(enemy).Alive)
	obj := components.Object.Get(player)
	assert.Equal(t, 100.0, obj.X)
	assert.Equal(t, 320.0, obj.Y)
}

func TestResolveEnemyContactIgnoresDeadAndDistant(t *testing.T) {
	w, _ := newTestWorld(t)
	player := placePlayer(w, 400, 320, 0, 0)

	dead := factory.CreateEnemy(w, 400, 320)
	components.Enemy.Get(dead).Alive = false
	assert.Equal(t, ContactNone, ResolveEnemyContact(player, dead))

	far := factory.CreateEnemy(w, 440, 320)
	assert.Equal(t, ContactNone, ResolveEnemyContact(player, far), "touching edges do not count")
	assert.Equal(t, 400.0, components.Object.Get(player).X)
}

func TestContactString(t *testing.T) {
	assert.Equal(t, "stomp", ContactStomp.String())
	assert.Equal(t, "hit", ContactHit.String())
	assert.Equal(t, "none", ContactNone.String())
}
