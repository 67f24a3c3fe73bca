package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

const (
	orbitCycle  = 600
	orbitWidth  = 150.0
	orbitHeight = 100.0
	orbitStep   = math.Pi / 75
	sprayDelay  = 100
)

// NewBoss1 returns the stage 2 boss.
func NewBoss1(pos cp.Vector, radius, hp float64) *component.Enemy {
	e := component.NewEnemy(component.VariantBoss1, pos, radius, hp)
	e.Orbit = &component.OrbitState{Volley: component.NewHomingVolley()}
	return e
}

// OrbitBehavior flies the stage 2 boss along a figure eight around the upper
// quarter of the field. It sprays during the two orbit loops and fires a
// homing volley once per cycle.
type OrbitBehavior struct{}

func (OrbitBehavior) Update(w *ecs.World, e *component.Enemy) {
	if w == nil || e == nil || e.Orbit == nil {
		return
	}
	o := e.Orbit
	o.Tick++
	t := o.Tick
	pool := w.Bullets()

	e.Pos = OrbitPosition(t)
	switch phase := t % orbitCycle; {
	case phase < orbitCycle/4:
		if t > sprayDelay {
			RadialSpray(pool, e.Pos, t, w.Rand())
		}
	case phase < orbitCycle/2:
		RadialSpray(pool, e.Pos, t, w.Rand())
	}

	UpdateHoming(&o.Volley, pool, e.Pos, w.Player().Pos(), t)
	e.InvTimer++
}

// OrbitPosition returns the stage 2 boss position on orbit tick t.
func OrbitPosition(t int) cp.Vector {
	cx, cy := common.ScreenWidth/2.0, common.ScreenHeight/4.0
	phase := t % orbitCycle
	k := float64(t - orbitCycle/2)
	switch {
	case phase < orbitCycle/4:
		a := k*orbitStep - math.Pi
		return common.Vec(cx+orbitWidth*(1+math.Cos(a)), cy+orbitHeight*math.Sin(a))
	case phase < orbitCycle/2:
		a := -k * orbitStep
		return common.Vec(cx+orbitWidth*(-1+math.Cos(a)), cy+orbitHeight*math.Sin(a))
	}
	return common.Vec(cx, cy)
}
