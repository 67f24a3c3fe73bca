package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
)

// HitDisplay holds the most recent hit for the floating damage number.
type HitDisplay struct {
	Pos    cp.Vector
	Damage float64
	Timer  int
	Shown  bool
}

// Show replaces the current hit.
func (h *HitDisplay) Show(pos cp.Vector, damage float64) {
	if h == nil {
		return
	}
	*h = HitDisplay{Pos: pos, Damage: damage, Shown: true}
}

// Tick ages the hit and hides it after HitDisplayFrames.
func (h *HitDisplay) Tick() {
	if h == nil || !h.Shown {
		return
	}
	h.Timer++
	if h.Timer > common.HitDisplayFrames {
		*h = HitDisplay{}
	}
}
