package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
)

// Projectile is one player shot. Damage is fixed when the shot is launched.
type Projectile struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Active bool
	Damage float64
}

// ProjectileSlots is the fixed round-robin pool of player shots.
type ProjectileSlots struct {
	slots  [common.MaxProjectiles]Projectile
	cursor int
}

func NewProjectileSlots() *ProjectileSlots {
	p := &ProjectileSlots{}
	p.Reset()
	return p
}

// Reset parks every slot off-screen and rewinds the cursor.
func (p *ProjectileSlots) Reset() {
	if p == nil {
		return
	}
	for i := range p.slots {
		p.slots[i] = Projectile{Pos: common.OffScreen}
	}
	p.cursor = 0
}

// Launch overwrites the slot under the cursor and advances it. It returns the
// slot index written.
func (p *ProjectileSlots) Launch(pos cp.Vector, vx, vy, damage float64) int {
	if p == nil {
		return -1
	}
	i := p.cursor % len(p.slots)
	if i < 0 {
		i = 0
	}
	p.slots[i] = Projectile{
		Pos:    pos,
		Vel:    cp.Vector{X: vx, Y: vy},
		Active: true,
		Damage: damage,
	}
	p.cursor = (i + 1) % len(p.slots)
	return i
}

// Integrate moves every slot by velocity*scale. Parked slots have zero
// velocity so they stay put.
func (p *ProjectileSlots) Integrate(scale float64) {
	if p == nil {
		return
	}
	for i := range p.slots {
		p.slots[i].Pos = p.slots[i].Pos.Add(p.slots[i].Vel.Mult(scale))
	}
}

// Deactivate parks slot i off-screen with zero velocity.
func (p *ProjectileSlots) Deactivate(i int) {
	if p == nil || i < 0 || i >= len(p.slots) {
		return
	}
	p.slots[i] = Projectile{Pos: common.OffScreen}
}

func (p *ProjectileSlots) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *ProjectileSlots) Len() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}

// Slot returns a copy of slot i.
func (p *ProjectileSlots) Slot(i int) (Projectile, bool) {
	if p == nil || i < 0 || i >= len(p.slots) {
		return Projectile{}, false
	}
	return p.slots[i], true
}

// Snapshot returns render data for every slot.
func (p *ProjectileSlots) Snapshot() []Snapshot {
	if p == nil {
		return nil
	}
	out := make([]Snapshot, 0, len(p.slots))
	for _, s := range p.slots {
		out = append(out, Snapshot{
			Position: s.Pos,
			Velocity: s.Vel,
			Radius:   common.ProjectileRadius,
			Active:   s.Active,
		})
	}
	return out
}
