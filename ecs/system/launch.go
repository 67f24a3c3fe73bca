package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs/component"
)

// LaunchSpeed converts sling energy into the signed launch speed
// sign(E)*sqrt(|E|).
func LaunchSpeed(energy float64) float64 {
	return common.SignedSqrt(energy)
}

// LaunchSystem integrates the two-band sling attached to the player body.
type LaunchSystem struct{}

func NewLaunchSystem() *LaunchSystem { return &LaunchSystem{} }

// Step advances the sling by one tick and reports a projectile when the
// release conditions line up.
func (s *LaunchSystem) Step(st *component.LaunchState, in component.Input) (component.Launch, bool) {
	if st == nil {
		return component.Launch{}, false
	}

	s.handleEdges(st, in)
	if !st.Free {
		st.Count++
	}

	s.integrate(st)
	s.placeBody(st, in)
	s.placeAnchors(st, in)
	s.placeBases(st)

	launch, fired := s.tryLaunch(st, in)
	s.recover(st)
	return launch, fired
}

func (s *LaunchSystem) handleEdges(st *component.LaunchState, in component.Input) {
	if in.Pressed {
		st.Pressed = true
		st.Moving = true
		st.Hand = st.Body
	}
	if in.Released && st.Pressed {
		st.Free = false
		st.LaunchSpeed = LaunchSpeed(st.Energy)
		st.Ready = st.Tension > common.ReadyDistance
		st.Hold()
	}
}

// integrate runs distances, directions, energies, acceleration and velocity.
func (s *LaunchSystem) integrate(st *component.LaunchState) {
	st.Tension = common.Dist(st.Body, st.Hand)
	st.DistL = common.Dist(st.BaseLeft, st.HandLeft)
	st.DistR = common.Dist(st.BaseRight, st.HandRight)
	st.Offset = st.Body.Sub(st.Hand)

	pullLine(st)
	perpendicular(st)
	st.CosL, st.SinL = bandDirection(st.BaseLeft, st.HandLeft, st.DistL)
	st.CosR, st.SinR = bandDirection(st.BaseRight, st.HandRight, st.DistR)

	st.Energy = energy(st.Tension, st.VelP)
	st.EnergyL = energy(st.DistL, st.VelP)
	st.EnergyR = energy(st.DistR, st.VelP)

	st.Accel = st.Energy
	st.AccelX = st.EnergyL*st.CosL + st.EnergyR*st.CosR
	st.AccelY = st.EnergyL*st.SinL + st.EnergyR*st.SinR

	if st.Free {
		st.VelP, st.VelX, st.VelY = 0, 0, 0
	} else {
		st.VelP += st.Accel
		st.VelX += st.AccelX
		st.VelY += st.AccelY
	}
	st.Offset = st.Offset.Add(cp.Vector{X: st.VelX, Y: st.VelY})
}

func energy(dist, velP float64) float64 {
	return (common.Force*dist - common.Mass*velP) * common.Spring
}

// pullLine sets the unit direction body->hand. Vertical lines fall back to a
// finite slope so nothing divides by zero.
func pullLine(st *component.LaunchState) {
	dx := st.Hand.X - st.Body.X
	if math.Abs(dx) >= common.NearlyZero && st.Tension >= common.NearlyZero {
		st.Cos = dx / st.Tension
		st.Sin = (st.Hand.Y - st.Body.Y) / st.Tension
		st.Slope = st.Sin / st.Cos
		return
	}
	st.Cos = 0
	if st.Hand.Y < st.Body.Y {
		st.Sin = -1
		st.Slope = -common.NearlyInf
	} else {
		st.Sin = 1
		st.Slope = common.NearlyInf
	}
}

func perpendicular(st *component.LaunchState) {
	st.PerpCos = st.Sin
	st.PerpSin = -st.Cos
	if math.Abs(st.PerpCos) >= common.NearlyZero {
		st.PerpSlope = st.PerpSin / st.PerpCos
		return
	}
	st.PerpCos = 0
	if st.Cos > 0 {
		st.PerpSin = -1
		st.PerpSlope = -common.NearlyInf
	} else {
		st.PerpSin = 1
		st.PerpSlope = common.NearlyInf
	}
}

func bandDirection(base, hand cp.Vector, dist float64) (float64, float64) {
	if dist < common.NearlyZero {
		return 0, 0
	}
	return (hand.X - base.X) / dist, (hand.Y - base.Y) / dist
}

func (s *LaunchSystem) placeBody(st *component.LaunchState, in component.Input) {
	st.Recoil++
	if st.Free {
		st.Count = 0
		body := in.Cursor
		if e := math.Abs(st.Energy); e >= common.SlingResistance {
			const jitter = 0.03
			pull := (e - common.SlingResistance) * 3
			body = body.Add(cp.Vector{X: pull * st.Cos, Y: pull * st.Sin})
			shake := cp.Vector{X: e * st.PerpCos * jitter, Y: e * st.PerpSin * jitter}
			if st.Recoil%4 < 2 {
				body = body.Add(shake)
			} else {
				body = body.Sub(shake)
			}
		}
		st.Body = body
	} else {
		st.Body = st.Hand.Add(st.Offset)
	}
	st.Body = common.ClampToField(st.Body, common.EllipseRound/2)
}

func (s *LaunchSystem) placeAnchors(st *component.LaunchState, in component.Input) {
	switch {
	case (!in.Down && st.Free) || st.Count >= common.SlingMaxCount:
		st.Hand = st.Body
		if !st.Pressed {
			st.Rest()
		}
	case st.Free && st.Pressed:
		half := cp.Vector{X: st.PerpCos * st.Tension / 2, Y: st.PerpSin * st.Tension / 2}
		st.HandLeft = st.Hand.Add(half)
		st.HandRight = st.Hand.Sub(half)
		st.Hold()
	case !st.Free:
		st.HandLeft, st.HandRight = st.Held()
	}
}

func (s *LaunchSystem) placeBases(st *component.LaunchState) {
	r := common.EllipseRound / 2
	dir := cp.Vector{X: 1}
	if st.Moving {
		dir = cp.Vector{X: st.PerpCos, Y: st.PerpSin}
	}
	st.BaseLeft = st.Body.Add(dir.Mult(r))
	st.BaseRight = st.Body.Sub(dir.Mult(r))
}

// tryLaunch fires when the tension counter passed one tick, the button is up,
// the sling is ready and |acceleration| just dropped.
func (s *LaunchSystem) tryLaunch(st *component.LaunchState, in component.Input) (component.Launch, bool) {
	a := math.Abs(st.Accel)
	fire := st.Count > 1 && !in.Down && st.Ready && a < st.PrevAccel
	st.PrevAccel = a
	if !fire {
		return component.Launch{}, false
	}
	st.Ready = false
	return component.Launch{
		Position: st.Body,
		Velocity: cp.Vector{X: st.VelX / 2, Y: st.VelY / 2},
		Damage:   math.Abs(st.LaunchSpeed),
	}, true
}

// recover frees the body once the tension counter reaches its limit.
func (s *LaunchSystem) recover(st *component.LaunchState) {
	if st.Count < common.SlingMaxCount || !st.Pressed {
		return
	}
	st.Accel = 0
	st.VelP = 0
	st.VelX, st.VelY = 0, 0
	st.Energy = 0
	st.Free = true
	st.Moving = false
	st.Pressed = false
}
