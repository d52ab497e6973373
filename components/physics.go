package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool // Recomputed every frame by the vertical pass
}

var Physics = donburi.NewComponentType[PhysicsData]()
