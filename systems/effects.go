package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// TriggerHitFlash starts (or restarts) the white flash on an entity.
func TriggerHitFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Tween = gween.New(1, 0, cfg.Effects.HitFlashSeconds, ease.OutQuad)
	flash.Intensity = 1
}

// UpdateEffects advances running flashes by dt seconds and clears finished ones.
func UpdateEffects(w donburi.World, dt float32) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		current, finished := flash.Tween.Update(dt)
		flash.Intensity = current
		if finished {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}
