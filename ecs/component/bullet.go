package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
)

// Bullet is one enemy shot.
type Bullet struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Radius float64
	Active bool
}

// ClearRule selects which neighbours are cleared with a bullet that hits the player.
type ClearRule int

const (
	ClearNone ClearRule = iota
	// ClearGroupOfTen clears the ten-aligned group holding the hit bullet.
	ClearGroupOfTen
	// ClearHomingBatch clears the current homing batch if the hit bullet is in it.
	ClearHomingBatch
)

// EnemyBulletPool is the fixed round-robin pool of enemy shots.
type EnemyBulletPool struct {
	bullets [common.MaxBullets]Bullet
	cursor  int

	batchStart int
	batchSize  int
}

func NewEnemyBulletPool() *EnemyBulletPool {
	p := &EnemyBulletPool{}
	p.ClearAll()
	return p
}

// ClearAll deactivates every bullet and rewinds the cursor.
func (p *EnemyBulletPool) ClearAll() {
	if p == nil {
		return
	}
	for i := range p.bullets {
		p.park(i)
	}
	p.cursor = 0
	p.batchStart = 0
	p.batchSize = 0
}

// next returns the index the next spawn writes to. Once the cursor passes
// capacity-gap it restarts at zero.
func (p *EnemyBulletPool) next() int {
	if p.cursor > len(p.bullets)-common.BulletSafetyGap || p.cursor < 0 {
		p.cursor = 0
	}
	return p.cursor % len(p.bullets)
}

// Spawn activates the bullet under the cursor and advances it.
func (p *EnemyBulletPool) Spawn(pos, vel cp.Vector, radius float64) int {
	if p == nil {
		return -1
	}
	i := p.next()
	p.bullets[i] = Bullet{Pos: pos, Vel: vel, Radius: radius, Active: true}
	p.cursor = (i + 1) % len(p.bullets)
	return i
}

// SpawnGroup writes n bullets to consecutive indexes starting at the cursor,
// which is checked against the wrap threshold once for the whole group. A
// cleared pool fed only groups of ten keeps every group on a multiple of ten,
// so no group straddles the wrap. at gives the position and velocity of the
// j-th bullet. It returns the first index.
func (p *EnemyBulletPool) SpawnGroup(n int, radius float64, at func(j int) (pos, vel cp.Vector)) int {
	if p == nil || n <= 0 || at == nil {
		return -1
	}
	start := p.next()
	for j := 0; j < n; j++ {
		pos, vel := at(j)
		p.bullets[(start+j)%len(p.bullets)] = Bullet{Pos: pos, Vel: vel, Radius: radius, Active: true}
	}
	p.cursor = (start + n) % len(p.bullets)
	return start
}

// Reserve spawns n stationary bullets at pos as one homing batch and returns
// the index of the first.
func (p *EnemyBulletPool) Reserve(n int, pos cp.Vector, radius float64) int {
	start := p.SpawnGroup(n, radius, func(int) (cp.Vector, cp.Vector) { return pos, cp.Vector{} })
	if start < 0 {
		return -1
	}
	p.batchStart = start
	p.batchSize = n
	return start
}

// Batch returns the current homing batch bounds.
func (p *EnemyBulletPool) Batch() (start, size int) {
	if p == nil {
		return 0, 0
	}
	return p.batchStart, p.batchSize
}

// PlaceBatch repositions the live bullets of the homing batch.
func (p *EnemyBulletPool) PlaceBatch(at func(j int) cp.Vector) {
	if p == nil || at == nil {
		return
	}
	for j := 0; j < p.batchSize; j++ {
		i := (p.batchStart + j) % len(p.bullets)
		if p.bullets[i].Active {
			p.bullets[i].Pos = at(j)
		}
	}
}

// FireBatch gives every live bullet of the homing batch the same velocity.
func (p *EnemyBulletPool) FireBatch(vel cp.Vector) {
	if p == nil {
		return
	}
	for j := 0; j < p.batchSize; j++ {
		i := (p.batchStart + j) % len(p.bullets)
		if p.bullets[i].Active {
			p.bullets[i].Vel = vel
		}
	}
}

// UpdateAll integrates active bullets and retires the ones that leave the
// field by more than their radius.
func (p *EnemyBulletPool) UpdateAll(scale float64) {
	if p == nil {
		return
	}
	for i := range p.bullets {
		b := &p.bullets[i]
		if !b.Active {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Mult(scale))
		if common.OutsideField(b.Pos, b.Radius) {
			p.park(i)
		}
	}
}

// TestPlayerCollision retires every active bullet touching the player and
// applies rule around each of them. It reports one hit with the lowest
// touching index. Nothing is tested while the player is invincible.
func (p *EnemyBulletPool) TestPlayerCollision(player cp.Vector, invincible bool, rule ClearRule) (bool, int) {
	if p == nil || invincible {
		return false, -1
	}
	first := -1
	for i := range p.bullets {
		b := &p.bullets[i]
		if !b.Active {
			continue
		}
		if common.Dist(b.Pos, player) > b.Radius+common.PlayerRadius/2 {
			continue
		}
		p.park(i)
		p.bulkClear(i, rule)
		if first < 0 {
			first = i
		}
	}
	return first >= 0, first
}

// bulkClear parks the neighbours of i selected by rule. Groups written by
// SpawnGroup from a cleared pool are ten-aligned and never straddle the wrap.
func (p *EnemyBulletPool) bulkClear(i int, rule ClearRule) {
	switch rule {
	case ClearGroupOfTen:
		start := i - i%10
		for j := start; j < start+10 && j < len(p.bullets); j++ {
			p.park(j)
		}
	case ClearHomingBatch:
		if p.batchSize > 0 && i >= p.batchStart && i < p.batchStart+p.batchSize {
			for j := 0; j < p.batchSize; j++ {
				p.park((p.batchStart + j) % len(p.bullets))
			}
		}
	}
}

func (p *EnemyBulletPool) park(i int) {
	p.bullets[i] = Bullet{Pos: common.Parked, Radius: common.BulletRadius}
}

func (p *EnemyBulletPool) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *EnemyBulletPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.bullets)
}

// Get returns a copy of bullet i.
func (p *EnemyBulletPool) Get(i int) (Bullet, bool) {
	if p == nil || i < 0 || i >= len(p.bullets) {
		return Bullet{}, false
	}
	return p.bullets[i], true
}

// ActiveCount returns the number of live bullets.
func (p *EnemyBulletPool) ActiveCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for i := range p.bullets {
		if p.bullets[i].Active {
			n++
		}
	}
	return n
}

// ForEachActive calls fn with the index and a copy of every live bullet.
func (p *EnemyBulletPool) ForEachActive(fn func(i int, b Bullet)) {
	if p == nil || fn == nil {
		return
	}
	for i := range p.bullets {
		if p.bullets[i].Active {
			fn(i, p.bullets[i])
		}
	}
}

// Snapshot returns the render state of every live bullet.
func (p *EnemyBulletPool) Snapshot() []Snapshot {
	if p == nil {
		return nil
	}
	out := make([]Snapshot, 0, 64)
	for i := range p.bullets {
		b := &p.bullets[i]
		if !b.Active {
			continue
		}
		out = append(out, Snapshot{Position: b.Pos, Velocity: b.Vel, Radius: b.Radius, Active: true})
	}
	return out
}
