package system

import (
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// Behavior advances one live enemy by a tick.
type Behavior interface {
	Update(w *ecs.World, e *component.Enemy)
}

// EnemySystem dispatches every live enemy to the behavior of its variant.
type EnemySystem struct {
	behaviors map[component.Variant]Behavior
}

func NewEnemySystem(cadence Cadence) *EnemySystem {
	if cadence == nil {
		cadence = EveryN(60)
	}
	return &EnemySystem{behaviors: map[component.Variant]Behavior{
		component.VariantBasic:  &VolleyBehavior{Cadence: cadence},
		component.VariantBoss1:  OrbitBehavior{},
		component.VariantBoss2:  BossBehavior{},
		component.VariantPixie:  PixieBehavior{},
		component.VariantTarget: TargetBehavior{},
	}}
}

// SetBehavior replaces the behavior of a variant.
func (s *EnemySystem) SetBehavior(v component.Variant, b Behavior) {
	if s == nil || b == nil {
		return
	}
	s.behaviors[v] = b
}

func (s *EnemySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, e := range w.Enemies() {
		if !e.Alive() {
			continue
		}
		b, ok := s.behaviors[e.Variant]
		if !ok {
			continue
		}
		b.Update(w, e)
	}
}
