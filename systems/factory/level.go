package factory

import (
	"fmt"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateLevel(w donburi.World, level cfg.LevelConfig, viewportWidth, viewportHeight float64) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{
		Width:          level.Width,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		PlayerSpawn:    math.NewVec2(level.PlayerSpawn.X, level.PlayerSpawn.Y),
	})
	return entry
}

// CreatePlatforms builds the ground strip left to right along the bottom of
// the screen, followed by the floating blocks in declaration order. The
// returned order is the order collisions are resolved in.
func CreatePlatforms(w donburi.World, level cfg.LevelConfig, screenHeight float64) []*donburi.Entry {
	if level.TileSize <= 0 {
		panic(fmt.Sprintf("invalid tile size %v", level.TileSize))
	}

	platforms := make([]*donburi.Entry, 0, int(level.Width/level.TileSize)+len(level.Blocks)+1)

	groundY := screenHeight - level.GroundHeight
	for x := 0.0; x < level.Width; x += level.TileSize {
		platforms = append(platforms, CreateGround(w, len(platforms), x, groundY, level.TileSize, level.GroundHeight))
	}

	for _, b := range level.Blocks {
		platforms = append(platforms, CreateBlock(w, len(platforms), b.X, b.Y, level.TileSize, level.TileSize))
	}

	if len(platforms) == 0 {
		panic("level has no platforms")
	}
	return platforms
}

// CreateEnemies spawns one enemy per spawn point, in order.
func CreateEnemies(w donburi.World, spawns []cfg.Spawn) []*donburi.Entry {
	enemies := make([]*donburi.Entry, 0, len(spawns))
	for _, s := range spawns {
		enemies = append(enemies, CreateEnemy(w, s.X, s.Y))
	}
	return enemies
}
