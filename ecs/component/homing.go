package component

import "github.com/jakecoffman/cp"

// HomingVolley is the state of a reserve-stretch-fire bullet batch owned by
// one enemy.
type HomingVolley struct {
	Cycle   int
	Size    int
	Stretch int
	Speed   float64
	Muzzle  cp.Vector
	Armed   bool
}

func NewHomingVolley() HomingVolley {
	return HomingVolley{Cycle: 600, Size: 6, Stretch: 30, Speed: 15, Muzzle: cp.Vector{Y: 60}}
}

// ReserveAt is the cycle tick the batch is reserved on.
func (h HomingVolley) ReserveAt() int { return h.Cycle*3/4 - h.Stretch }

// FireAt is the cycle tick the batch is fired on.
func (h HomingVolley) FireAt() int { return h.Cycle * 3 / 4 }
