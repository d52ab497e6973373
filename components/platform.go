package components

import (
	"github.com/yohamta/donburi"
)

// PlatformKind separates the ground strip from floating blocks for drawing
// and for the optional ground exemption in enemy turning.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformBlock
)

type PlatformData struct {
	Kind  PlatformKind
	Index int // Position in the level's platform order
}

var Platform = donburi.NewComponentType[PlatformData]()
