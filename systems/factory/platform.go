package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateGround creates one tile of the ground strip.
func CreateGround(w donburi.World, index int, x, y, width, height float64) *donburi.Entry {
	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid, tags.ResolvGround)
	return createPlatform(w, obj, components.PlatformData{Kind: components.PlatformGround, Index: index}, tags.Ground)
}

// CreateBlock creates a floating block.
func CreateBlock(w donburi.World, index int, x, y, width, height float64) *donburi.Entry {
	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid, tags.ResolvBlock)
	return createPlatform(w, obj, components.PlatformData{Kind: components.PlatformBlock, Index: index}, tags.Block)
}

func createPlatform(w donburi.World, obj *resolv.Object, data components.PlatformData, kind donburi.IComponentType) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w, kind)

	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = platform // Link for O(1) lookup

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, data)
	addToSpace(w, obj)

	return platform
}
