package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
)

// Input is the pointer state sampled once per tick.
type Input struct {
	Cursor   cp.Vector
	Down     bool
	Pressed  bool
	Released bool
}

type Player struct {
	Sling  LaunchState
	Health *Health
	Guard  Invincibility
}

func NewPlayer(pos cp.Vector) *Player {
	return &Player{
		Sling:  NewLaunchState(pos),
		Health: NewHealth(common.PlayerMaxHP),
		Guard:  NewInvincibility(common.PlayerInvincibility),
	}
}

func (p *Player) Pos() cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	return p.Sling.Body
}

// ShakeOffset is the screen offset while a fresh hit is being shown.
func (p *Player) ShakeOffset() cp.Vector {
	if p == nil || p.Guard.Counter >= 5 {
		return cp.Vector{}
	}
	t := float64(p.Guard.Counter)
	if p.Guard.Counter%2 != 0 {
		t = -t
	}
	return cp.Vector{X: 3 * t, Y: 3 * t}
}
