package system

import "github.com/milk9111/slingshot/ecs"

// BulletSystem integrates the enemy bullet pool.
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem { return &BulletSystem{} }

func (s *BulletSystem) Update(w *ecs.World) {
	w.Bullets().UpdateAll(1)
}

// HitDisplaySystem ages the floating damage number.
type HitDisplaySystem struct{}

func NewHitDisplaySystem() *HitDisplaySystem { return &HitDisplaySystem{} }

func (s *HitDisplaySystem) Update(w *ecs.World) {
	w.Hits().Tick()
}
