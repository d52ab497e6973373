package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: cfg.Enemy.StartDirection,
		Speed:     cfg.Enemy.Speed,
		Alive:     true,
	})

	addToSpace(w, obj)
	return enemy
}

// DestroyEnemy removes the enemy's collision object and entity.
func DestroyEnemy(w donburi.World, enemy *donburi.Entry) {
	if !enemy.Valid() {
		return
	}
	obj := components.Object.Get(enemy)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(enemy.Entity())
}
