package system

import (
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
)

// PlayerSystem ticks the player's grace counter, steps the sling and loads
// released shots into the projectile slots.
type PlayerSystem struct {
	launch *LaunchSystem
}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{launch: NewLaunchSystem()}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil || w.Player() == nil {
		return
	}
	p := w.Player()
	if w.Stage().IsStage() {
		p.Guard.Tick()
	}
	shot, ok := s.launch.Step(&p.Sling, w.Input())
	if !ok {
		return
	}
	w.Shots().Launch(shot.Position, shot.Velocity.X, shot.Velocity.Y, shot.Damage)
}

// ProjectileSystem moves player shots and retires those that leave the field.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(w *ecs.World) {
	shots := w.Shots()
	if shots == nil {
		return
	}
	shots.Integrate(1)
	for i := 0; i < shots.Len(); i++ {
		slot, _ := shots.Slot(i)
		if slot.Active && common.OutsideField(slot.Pos, common.ProjectileRadius) {
			shots.Deactivate(i)
		}
	}
}
