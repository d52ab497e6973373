package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Width          float64
	ViewportWidth  float64
	ViewportHeight float64
	PlayerSpawn    math.Vec2
	Frame          uint64 // Completed simulation steps
}

var Level = donburi.NewComponentType[LevelData]()
