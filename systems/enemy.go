package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateEnemy walks a live enemy one step and turns it around when it ends up
// inside any platform. Only the first overlap counts.
//
// Ground tiles take part in the test unless cfg.Enemy.IgnoreGroundTurn is
// set, so an enemy sunk into the ground flips every frame.
func UpdateEnemy(enemy *donburi.Entry, platforms *PlatformSet) {
	data := components.Enemy.Get(enemy)
	if !data.Alive {
		return
	}

	obj := components.Object.Get(enemy)
	r := obj.Rect().Translate(data.Speed*data.Direction, 0)
	obj.MoveTo(r)

	for i, p := range platforms.Rects() {
		if cfg.Enemy.IgnoreGroundTurn && platforms.IsGround(i) {
			continue
		}
		if gamemath.Intersects(r, p) {
			data.Direction = -data.Direction
			break
		}
	}
}
