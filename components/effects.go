package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData drives the white flash drawn over the player after a hit.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32 // 0 = no flash, 1 = fully white
}

var Flash = donburi.NewComponentType[FlashData]()
