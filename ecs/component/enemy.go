package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
)

// Variant selects an enemy's behavior.
type Variant int

const (
	VariantBasic Variant = iota
	VariantBoss1
	VariantBoss2
	VariantPixie
	// VariantTarget is the start/restart button on the title and game over scenes.
	VariantTarget
)

func (v Variant) String() string {
	switch v {
	case VariantBasic:
		return "basic"
	case VariantBoss1:
		return "boss1"
	case VariantBoss2:
		return "boss2"
	case VariantPixie:
		return "pixie"
	case VariantTarget:
		return "target"
	}
	return "unknown"
}

// ParseVariant maps a prefab name to a Variant.
func ParseVariant(name string) (Variant, bool) {
	for v := VariantBasic; v <= VariantTarget; v++ {
		if v.String() == name {
			return v, true
		}
	}
	return VariantBasic, false
}

type Enemy struct {
	Variant    Variant
	Slot       int
	Pos        cp.Vector
	Radius     float64
	BaseRadius float64
	Health     *Health
	Active     bool
	// InvTimer counts ticks since the last hit; the enemy flashes while it
	// is at most half the invincibility window.
	InvTimer int

	Orbit *OrbitState
	Boss  *BossState
	Pixie *PixieState
}

// NewEnemy returns an active enemy with full health.
func NewEnemy(v Variant, pos cp.Vector, radius, hp float64) *Enemy {
	return &Enemy{
		Variant:    v,
		Pos:        pos,
		Radius:     radius,
		BaseRadius: radius,
		Health:     NewHealth(hp),
		Active:     true,
		InvTimer:   common.PlayerInvincibility,
	}
}

// Alive reports whether the enemy takes part in collisions.
func (e *Enemy) Alive() bool {
	return e != nil && e.Active && e.Health.IsAlive()
}

func (e *Enemy) CurrentHP() float64 {
	if e == nil {
		return 0
	}
	return e.Health.CurrentHP()
}

// Hitbox returns the collision circle.
func (e *Enemy) Hitbox() (cp.Vector, float64) {
	if e == nil {
		return cp.Vector{}, 0
	}
	return e.Pos, e.Radius
}

func (e *Enemy) Invincible() bool {
	return e != nil && e.InvTimer <= common.PlayerInvincibility/2
}

// Kill deactivates the enemy and parks it off the field.
func (e *Enemy) Kill() {
	if e == nil {
		return
	}
	e.Active = false
	e.Health.SetCurrentHP(0)
	e.Health.Dead = true
	e.Pos = common.Parked
}

func (e *Enemy) Snapshot() Snapshot {
	if e == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Position:   e.Pos,
		Radius:     e.Radius,
		Active:     e.Active,
		HP:         e.Health.CurrentHP(),
		MaxHP:      e.Health.MaxHP(),
		Invincible: e.Invincible(),
		Variant:    e.Variant,
	}
	if e.Boss != nil {
		s.Flicker = append([]float64(nil), e.Boss.Flicker[:]...)
		s.Sway = e.Boss.Sway
	}
	return s
}

// OrbitState drives the stage 2 boss.
type OrbitState struct {
	Tick   int
	Volley HomingVolley
}

// BossPhase is one state of the stage 3 boss cycle.
type BossPhase int

const (
	PhaseJump BossPhase = iota
	PhaseChase
	PhaseMoveCenter
	PhaseScrewAttack
	PhaseSummonWindow
)

func (p BossPhase) String() string {
	switch p {
	case PhaseJump:
		return "jump"
	case PhaseChase:
		return "chase"
	case PhaseMoveCenter:
		return "move_center"
	case PhaseScrewAttack:
		return "screw_attack"
	case PhaseSummonWindow:
		return "summon_window"
	}
	return "unknown"
}

const FlickerPoints = 16

// BossState is the runtime of the stage 3 boss.
type BossState struct {
	Tick     int
	Phase    BossPhase
	Entered  int
	Enraged  bool
	MadTimer int

	JumpVY float64
	Vel    cp.Vector
	// CenterFrom is where the move-to-center lerp started.
	CenterFrom cp.Vector

	Flicker [FlickerPoints]float64
	Sway    float64
	Minions [2]*Enemy
}

// PixieState is the smoothed homing velocity of a summoned minion.
type PixieState struct {
	Tick int
	Vel  cp.Vector
}
