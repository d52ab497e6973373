package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/input"
	"github.com/automoto/platformer/render"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/world"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs    *ecs.ECS
	world  *world.World
	logger *log.Logger
	quit   bool
	once   sync.Once
}

func NewPlatformerScene(logger *log.Logger) *PlatformerScene {
	return &PlatformerScene{logger: logger}
}

// Update runs one frame. It returns ebiten.Termination once quit is pressed.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	if ps.quit {
		ps.logger.Info("quit requested", "frame", ps.world.Frame())
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.world = world.New(cfg.Level, world.WithLogger(ps.logger))
	e := ecs.NewECS(ps.world.Registry())

	e.AddSystem(input.UpdateInput)
	e.AddSystem(ps.updateSimulation)
	e.AddSystem(ps.updateEffects)

	e.AddRenderer(render.LayerDefault, render.DrawLevel)
	e.AddRenderer(render.LayerDefault, render.DrawEntities)
	e.AddRenderer(render.LayerDefault, render.DrawDebug)
	e.AddRenderer(render.LayerDefault, render.DrawHUD)

	ps.ecs = e
	ps.logger.Info("level ready",
		"platforms", ps.world.Platforms().Len(),
		"enemies", len(ps.world.Enemies()),
	)
}

func (ps *PlatformerScene) updateSimulation(e *ecs.ECS) {
	actions := input.GetOrCreateInput(e)

	if actions.Action(cfg.ActionQuit).JustPressed {
		ps.quit = true
		return
	}
	if actions.Action(cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowOverlay = !cfg.Debug.ShowOverlay
		ps.logger.Debug("debug overlay", "enabled", cfg.Debug.ShowOverlay)
	}

	ev := ps.world.Step(world.InputFromActions(actions))
	if ev.Hits > 0 {
		systems.TriggerHitFlash(ps.world.Player())
	}
}

func (ps *PlatformerScene) updateEffects(e *ecs.ECS) {
	systems.UpdateEffects(e.World, 1/float32(cfg.C.TPS))
}
