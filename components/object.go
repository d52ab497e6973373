package components

import (
	"github.com/automoto/platformer/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as a plain rectangle.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// MoveTo places the object at r's position and refreshes its cells in the
// collision space. Size is never changed.
func (o ObjectData) MoveTo(r gamemath.Rect) {
	if o.X == r.X && o.Y == r.Y {
		return
	}
	o.X = r.X
	o.Y = r.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
