package world

import (
	"io"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// World owns everything the simulation touches: the entity registry, the
// collision space, the ordered platform set, the player and the live enemies.
type World struct {
	registry  donburi.World
	platforms *systems.PlatformSet
	player    *donburi.Entry
	enemies   []*donburi.Entry
	camera    *donburi.Entry
	level     *donburi.Entry
	logger    *log.Logger
}

type Option func(*World)

// WithLogger routes simulation events (stomps, hits) to logger.
func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// New builds the level described by level at the configured screen size.
func New(level cfg.LevelConfig, opts ...Option) *World {
	w := &World{
		registry: donburi.NewWorld(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	screenHeight := float64(cfg.C.Height)

	factory.CreateSpace(w.registry, int(level.Width), cfg.C.Height, int(level.TileSize), int(level.TileSize))
	w.level = factory.CreateLevel(w.registry, level, cfg.Camera.ViewportWidth, screenHeight)
	w.camera = factory.CreateCamera(w.registry)
	w.platforms = systems.NewPlatformSet(factory.CreatePlatforms(w.registry, level, screenHeight))
	w.player = factory.CreatePlayer(w.registry, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	w.enemies = factory.CreateEnemies(w.registry, level.EnemySpawns)

	systems.UpdateCamera(w.registry)

	w.logger.Debug("world created",
		"platforms", w.platforms.Len(),
		"enemies", len(w.enemies),
		"width", level.Width,
	)
	return w
}

// Registry exposes the underlying entity registry, for rendering.
func (w *World) Registry() donburi.World { return w.registry }

func (w *World) Player() *donburi.Entry { return w.player }

// Enemies returns the live enemies in creation order. The slice must not be
// modified.
func (w *World) Enemies() []*donburi.Entry { return w.enemies }

func (w *World) Platforms() *systems.PlatformSet { return w.platforms }

func (w *World) CameraOffset() float64 {
	return components.Camera.Get(w.camera).OffsetX
}

func (w *World) Level() components.LevelData {
	return components.Level.GetValue(w.level)
}

// Frame is the number of completed steps.
func (w *World) Frame() uint64 {
	return components.Level.Get(w.level).Frame
}
