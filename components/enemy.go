package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Direction float64 // +1 right, -1 left
	Speed     float64
	Alive     bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
