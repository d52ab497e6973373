package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/systems/factory"
	"github.com/yohamta/donburi"
)

type testRect struct {
	x, y, w, h float64
	ground     bool
}

func newTestWorld(t *testing.T, rects ...testRect) (donburi.World, *PlatformSet) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, 2000, 400, 40, 40)

	entries := make([]*donburi.Entry, 0, len(rects))
	for i, r := range rects {
		if r.ground {
			entries = append(entries, factory.CreateGround(w, i, r.x, r.y, r.w, r.h))
		} else {
			entries = append(entries, factory.CreateBlock(w, i, r.x, r.y, r.w, r.h))
		}
	}
	return w, NewPlatformSet(entries)
}

func groundStrip(width float64) []testRect {
	var rects []testRect
	for x := 0.0; x < width; x += 40 {
		rects = append(rects, testRect{x: x, y: 360, w: 40, h: 40, ground: true})
	}
	return rects
}

func placePlayer(w donburi.World, x, y, speedX, speedY float64) *donburi.Entry {
	player := factory.CreatePlayer(w, x, y)
	physics := components.Physics.Get(player)
	physics.SpeedX = speedX
	physics.SpeedY = speedY
	return player
}
