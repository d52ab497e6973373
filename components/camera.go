package components

import (
	"github.com/yohamta/donburi"
)

type CameraData struct {
	OffsetX float64 // World-to-screen horizontal translation
}

var Camera = donburi.NewComponentType[CameraData]()
