package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Spawn math.Vec2 // Position restored when an enemy hits the player
}

var Player = donburi.NewComponentType[PlayerData]()
