package world

import (
	"slices"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gamemath"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/yohamta/donburi"
)

// Events summarises what happened during one step.
type Events struct {
	Jumped bool
	Stomps int
	Hits   int
	Pruned int
}

// Step advances the simulation by one frame. The order is fixed: jump,
// horizontal input, player, enemies, player/enemy contacts, pruning, camera.
func (w *World) Step(in Input) Events {
	var ev Events

	if in.Jump {
		ev.Jumped = systems.Jump(w.player)
	}
	systems.SetPlayerVelocity(w.player, gamemath.HorizontalSpeed(in.Left, in.Right, cfg.Player.Speed))

	systems.UpdatePlayer(w.player, w.platforms)
	for _, enemy := range w.enemies {
		systems.UpdateEnemy(enemy, w.platforms)
	}

	for _, enemy := range slices.Clone(w.enemies) {
		switch systems.ResolveEnemyContact(w.player, enemy) {
		case systems.ContactStomp:
			ev.Stomps++
			w.logger.Info("enemy stomped", "frame", w.Frame(), "x", components.Object.Get(enemy).X)
		case systems.ContactHit:
			ev.Hits++
			w.logger.Warn("ouch, player reset", "frame", w.Frame())
		}
	}

	ev.Pruned = w.pruneEnemies()
	systems.UpdateCamera(w.registry)

	components.Level.Get(w.level).Frame++
	return ev
}

// pruneEnemies drops dead enemies from the live collection, keeping the
// survivors in order, and destroys their entities.
func (w *World) pruneEnemies() int {
	alive := make([]*donburi.Entry, 0, len(w.enemies))
	pruned := 0
	for _, enemy := range w.enemies {
		if components.Enemy.Get(enemy).Alive {
			alive = append(alive, enemy)
			continue
		}
		factory.DestroyEnemy(w.registry, enemy)
		pruned++
	}
	w.enemies = alive
	return pruned
}
