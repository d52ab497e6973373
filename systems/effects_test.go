package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestHitFlashFadesOut(t *testing.T) {
	w, _ := newTestWorld(t)
	player := placePlayer(w, 0, 0, 0, 0)

	UpdateEffects(w, 1.0/60)
	assert.Zero(t, components.Flash.Get(player).Intensity)

	TriggerHitFlash(player)
	assert.Equal(t, float32(1), components.Flash.Get(player).Intensity)

	UpdateEffects(w, cfg.Effects.HitFlashSeconds/2)
	mid := components.Flash.Get(player).Intensity
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))

	UpdateEffects(w, cfg.Effects.HitFlashSeconds)
	flash := components.Flash.Get(player)
	assert.Zero(t, flash.Intensity)
	assert.Nil(t, flash.Tween)
}

func TestTriggerHitFlashWithoutComponent(t *testing.T) {
	w, _ := newTestWorld(t)
	enemy := factory.CreateEnemy(w, 0, 0)
	assert.NotPanics(t, func() { TriggerHitFlash(enemy) })
}
