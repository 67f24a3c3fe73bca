package system

import (
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// Cadence decides whether a stage's generator fires on the given stage tick.
type Cadence interface {
	Fire(stage component.StageID, tick int) bool
}

// EveryN fires on every tick divisible by N.
type EveryN int

func (n EveryN) Fire(_ component.StageID, tick int) bool {
	return n > 0 && tick%int(n) == 0
}

// VolleyBehavior makes stage 1 enemies fire a knife volley whenever the
// stage cadence fires. They do not move.
type VolleyBehavior struct {
	Cadence Cadence
}

func (v *VolleyBehavior) Update(w *ecs.World, e *component.Enemy) {
	if v == nil || w == nil || e == nil {
		return
	}
	e.InvTimer++
	if v.Cadence == nil || !v.Cadence.Fire(w.Stage(), w.StageTick()) {
		return
	}
	Volley(w.Bullets(), e.Pos, w.Rand())
}

// TargetBehavior is the title and game over button. It only recovers from hits.
type TargetBehavior struct{}

func (TargetBehavior) Update(_ *ecs.World, e *component.Enemy) {
	if e != nil {
		e.InvTimer++
	}
}
