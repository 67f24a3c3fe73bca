package system

import (
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// fixedRand returns the same draws forever.
type fixedRand struct {
	f, n float64
}

func (r fixedRand) Float64() float64     { return r.f }
func (r fixedRand) NormFloat64() float64 { return r.n }

func newStageWorld(stage component.StageID, enemies ...*component.Enemy) *ecs.World {
	w := ecs.NewWorld(common.NewRand(7))
	w.ResetStage(stage, enemies)
	return w
}
