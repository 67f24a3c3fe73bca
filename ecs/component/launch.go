package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
)

// LaunchState is the sling attached to the player body. Only the launch
// system mutates it.
type LaunchState struct {
	Body cp.Vector
	// Hand is the sling center, the midpoint of the two anchors.
	Hand      cp.Vector
	HandLeft  cp.Vector
	HandRight cp.Vector
	// BaseLeft and BaseRight are where the bands attach to the body.
	BaseLeft  cp.Vector
	BaseRight cp.Vector
	// held anchors while the body is in flight
	heldLeft  cp.Vector
	heldRight cp.Vector

	Tension float64
	DistL   float64
	DistR   float64
	Offset  cp.Vector

	Cos, Sin         float64
	PerpCos, PerpSin float64
	Slope, PerpSlope float64
	CosL, SinL       float64
	CosR, SinR       float64

	Energy  float64
	EnergyL float64
	EnergyR float64

	Accel  float64
	AccelX float64
	AccelY float64

	VelP float64
	VelX float64
	VelY float64

	Free    bool
	Pressed bool
	Ready   bool
	Moving  bool

	Count     int
	PrevAccel float64
	// LaunchSpeed is captured once per release.
	LaunchSpeed float64
	Recoil      int
}

// NewLaunchState returns a resting sling centred on pos.
func NewLaunchState(pos cp.Vector) LaunchState {
	s := LaunchState{Body: pos, Free: true}
	s.Rest()
	return s
}

// Rest collapses the anchors back onto the body.
func (s *LaunchState) Rest() {
	if s == nil {
		return
	}
	half := common.EllipseRound / 2
	s.Hand = s.Body
	s.HandLeft = cp.Vector{X: s.Body.X - half, Y: s.Body.Y}
	s.HandRight = cp.Vector{X: s.Body.X + half, Y: s.Body.Y}
	s.heldLeft, s.heldRight = s.HandLeft, s.HandRight
}

// Hold remembers the current anchors so they stay fixed during flight.
func (s *LaunchState) Hold() {
	s.heldLeft, s.heldRight = s.HandLeft, s.HandRight
}

// Held returns the anchors saved by Hold.
func (s *LaunchState) Held() (cp.Vector, cp.Vector) {
	return s.heldLeft, s.heldRight
}

// Launch is one projectile released by the sling.
type Launch struct {
	Position cp.Vector
	Velocity cp.Vector
	Damage   float64
}
