package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gamemath"
	"github.com/yohamta/donburi"
)

// Contact is the outcome of testing the player against one enemy.
type Contact int

const (
	ContactNone Contact = iota
	ContactStomp
	ContactHit
)

func (c Contact) String() string {
	switch c {
	case ContactStomp:
		return "stomp"
	case ContactHit:
		return "hit"
	default:
		return "none"
	}
}

// IsStomp reports whether a falling player whose feet are no lower than the
// enemy's centre plus the tolerance lands on top of it.
func IsStomp(player, enemy gamemath.Rect, speedY float64) bool {
	return speedY > 0 && player.Bottom() <= enemy.CenterY()+cfg.Player.StompTolerance
}

// ResolveEnemyContact applies the result of the player touching an enemy. A
// stomp kills the enemy and bounces the player; anything else sends the
// player back to spawn. Dead or non-overlapping enemies are ignored.
func ResolveEnemyContact(player, enemy *donburi.Entry) Contact {
	enemyData := components.Enemy.Get(enemy)
	if !enemyData.Alive {
		return ContactNone
	}

	playerRect := components.Object.Get(player).Rect()
	enemyRect := components.Object.Get(enemy).Rect()
	if !gamemath.Intersects(playerRect, enemyRect) {
		return ContactNone
	}

	physics := components.Physics.Get(player)
	if IsStomp(playerRect, enemyRect, physics.SpeedY) {
		enemyData.Alive = false
		physics.SpeedY = cfg.Player.JumpVelocity * cfg.Player.StompBounceFactor
		return ContactStomp
	}

	RespawnPlayer(player)
	return ContactHit
}
