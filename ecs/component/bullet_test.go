package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
)

func TestEnemyBulletPoolCursor(t *testing.T) {
	cases := []struct {
		name       string
		spawns     int
		wantCursor int
	}{
		{"one", 1, 1},
		{"at_threshold", 701, 701},
		{"past_threshold_restarts", 702, 1},
		{"many", 2000, 2000 % 701},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewEnemyBulletPool()
			for i := 0; i < c.spawns; i++ {
				idx := p.Spawn(common.Vec(500, 400), cp.Vector{}, common.BulletRadius)
				if idx < 0 || idx >= common.MaxBullets {
					t.Fatalf("spawn %d wrote index %d", i, idx)
				}
			}
			if p.Cursor() != c.wantCursor {
				t.Fatalf("cursor = %d, want %d", p.Cursor(), c.wantCursor)
			}
		})
	}
}

func TestEnemyBulletPoolReserveIsContiguous(t *testing.T) {
	p := NewEnemyBulletPool()
	for i := 0; i < 698; i++ {
		p.Spawn(common.Vec(500, 400), cp.Vector{}, common.BulletRadius)
	}
	start := p.Reserve(6, common.Vec(10, 10), common.BulletRadius)
	if start != 698 {
		t.Fatalf("reserve start = %d, want 698", start)
	}
	if got, size := p.Batch(); got != 698 || size != 6 {
		t.Fatalf("batch = (%d, %d), want (698, 6)", got, size)
	}
	for j := 0; j < 6; j++ {
		b, _ := p.Get(698 + j)
		if !b.Active || b.Pos != common.Vec(10, 10) {
			t.Fatalf("bullet %d = %+v, want reserved", 698+j, b)
		}
	}
}

func TestEnemyBulletPoolBulkClear(t *testing.T) {
	player := common.Vec(600, 600)

	cases := []struct {
		name      string
		rule      ClearRule
		setup     func(p *EnemyBulletPool) int
		wantLeft  int
		wantIndex int
	}{
		{
			name: "group_of_ten",
			rule: ClearGroupOfTen,
			setup: func(p *EnemyBulletPool) int {
				for i := 0; i < 35; i++ {
					p.Spawn(common.Vec(50, 50), cp.Vector{}, common.BulletRadius)
				}
				p.bullets[23].Pos = player
				return 23
			},
			wantLeft:  25,
			wantIndex: 23,
		},
		{
			name: "homing_batch",
			rule: ClearHomingBatch,
			setup: func(p *EnemyBulletPool) int {
				for i := 0; i < 4; i++ {
					p.Spawn(common.Vec(50, 50), cp.Vector{}, common.BulletRadius)
				}
				start := p.Reserve(6, common.Vec(50, 50), common.BulletRadius)
				p.bullets[start+2].Pos = player
				return start + 2
			},
			wantLeft:  4,
			wantIndex: 6,
		},
		{
			name: "homing_rule_outside_batch",
			rule: ClearHomingBatch,
			setup: func(p *EnemyBulletPool) int {
				for i := 0; i < 4; i++ {
					p.Spawn(common.Vec(50, 50), cp.Vector{}, common.BulletRadius)
				}
				p.Reserve(6, common.Vec(50, 50), common.BulletRadius)
				p.bullets[1].Pos = player
				return 1
			},
			wantLeft:  9,
			wantIndex: 1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewEnemyBulletPool()
			c.setup(p)
			hit, idx := p.TestPlayerCollision(player, false, c.rule)
			if !hit || idx != c.wantIndex {
				t.Fatalf("hit = %v at %d, want hit at %d", hit, idx, c.wantIndex)
			}
			if got := p.ActiveCount(); got != c.wantLeft {
				t.Fatalf("active = %d, want %d", got, c.wantLeft)
			}
		})
	}
}

func TestEnemyBulletPoolClearsEveryTouchingBullet(t *testing.T) {
	player := common.Vec(600, 600)
	p := NewEnemyBulletPool()
	p.Spawn(player, cp.Vector{}, common.BulletRadius)
	p.Spawn(player.Add(cp.Vector{X: 5}), cp.Vector{}, common.BulletRadius)
	p.Spawn(common.Vec(100, 100), cp.Vector{}, common.BulletRadius)

	hit, idx := p.TestPlayerCollision(player, false, ClearNone)
	if !hit || idx != 0 {
		t.Fatalf("hit = %v at %d, want hit at 0", hit, idx)
	}
	if b, _ := p.Get(1); b.Active {
		t.Fatalf("second touching bullet still active")
	}
	if got := p.ActiveCount(); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
}

func TestEnemyBulletPoolSpawnGroupWraps(t *testing.T) {
	cases := []struct {
		name      string
		groups    int
		wantStart int
	}{
		{"first", 1, 0},
		{"last_before_wrap", 71, 700},
		{"after_wrap", 72, 0},
		{"second_lap", 75, 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewEnemyBulletPool()
			start := -1
			for k := 0; k < c.groups; k++ {
				start = p.SpawnGroup(10, common.BulletRadius, func(int) (cp.Vector, cp.Vector) {
					return common.Vec(50, 50), cp.Vector{}
				})
			}
			if start != c.wantStart {
				t.Fatalf("start = %d, want %d", start, c.wantStart)
			}
		})
	}
}

func TestEnemyBulletPoolIgnoresInvinciblePlayer(t *testing.T) {
	p := NewEnemyBulletPool()
	p.Spawn(common.Vec(600, 600), cp.Vector{}, common.BulletRadius)
	if hit, _ := p.TestPlayerCollision(common.Vec(600, 600), true, ClearNone); hit {
		t.Fatalf("invincible player was hit")
	}
	if p.ActiveCount() != 1 {
		t.Fatalf("bullet consumed while player invincible")
	}
}

func TestEnemyBulletPoolRetiresOffField(t *testing.T) {
	p := NewEnemyBulletPool()
	p.Spawn(common.Vec(5, 400), cp.Vector{X: -20}, common.BulletRadius)
	p.Spawn(common.Vec(600, 400), cp.Vector{X: 1}, common.BulletRadius)
	p.UpdateAll(1)
	if got := p.ActiveCount(); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
	b, _ := p.Get(0)
	if b.Pos != common.Parked {
		t.Fatalf("retired bullet at %v, want parked", b.Pos)
	}
}
