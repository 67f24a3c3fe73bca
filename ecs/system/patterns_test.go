package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs/component"
)

func TestVolley(t *testing.T) {
	pool := component.NewEnemyBulletPool()
	first := Volley(pool, common.Vec(600, 100), fixedRand{f: 0.5})
	if first != 0 || pool.ActiveCount() != len(volleyShape) {
		t.Fatalf("first=%d active=%d, want 0 and %d", first, pool.ActiveCount(), len(volleyShape))
	}
	b0, _ := pool.Get(0)
	pool.ForEachActive(func(i int, b component.Bullet) {
		if b.Vel != b0.Vel {
			t.Fatalf("bullet %d velocity %v differs from %v", i, b.Vel, b0.Vel)
		}
	})
	// step 0 fires straight down.
	if math.Abs(b0.Vel.X) > 1e-9 || math.Abs(b0.Vel.Y-5) > 1e-9 {
		t.Fatalf("velocity = %v, want (0, 5)", b0.Vel)
	}
}

func TestRadialSprayEvenTicks(t *testing.T) {
	cases := []struct {
		name string
		tick int
		want int
	}{
		{"even", 10, 1},
		{"odd", 11, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := component.NewEnemyBulletPool()
			RadialSpray(pool, common.Vec(600, 100), c.tick, fixedRand{f: 0.5})
			if got := pool.ActiveCount(); got != c.want {
				t.Fatalf("active = %d, want %d", got, c.want)
			}
		})
	}
}

func TestUpdateHoming(t *testing.T) {
	pool := component.NewEnemyBulletPool()
	h := component.NewHomingVolley()
	origin := common.Vec(600, 100)
	target := common.Vec(600, 700)

	for tick := 0; tick < h.FireAt(); tick++ {
		UpdateHoming(&h, pool, origin, target, tick)
	}
	start, size := pool.Batch()
	if size != h.Size || !h.Armed {
		t.Fatalf("batch size=%d armed=%v before firing", size, h.Armed)
	}
	for j := 0; j < size; j++ {
		b, _ := pool.Get(start + j)
		if b.Vel != (cp.Vector{}) {
			t.Fatalf("bullet %d moving before fire: %v", j, b.Vel)
		}
	}

	UpdateHoming(&h, pool, origin, target, h.FireAt())
	if h.Armed {
		t.Fatalf("still armed after firing")
	}
	for j := 0; j < size; j++ {
		b, _ := pool.Get(start + j)
		if math.Abs(b.Vel.X) > 1e-9 || math.Abs(b.Vel.Y-h.Speed) > 1e-9 {
			t.Fatalf("bullet %d velocity = %v, want (0, %v)", j, b.Vel, h.Speed)
		}
	}
	last, _ := pool.Get(start + size - 1)
	if last.Pos.Y <= origin.Y+h.Muzzle.Y {
		t.Fatalf("batch not stretched toward target: %v", last.Pos)
	}
}

func TestSpiralAndBreath(t *testing.T) {
	pool := component.NewEnemyBulletPool()
	origin := common.Vec(600, 400)
	Spiral(pool, origin, 25, fixedRand{f: 0})
	b, _ := pool.Get(0)
	if math.Abs(b.Vel.X) > 1e-9 || math.Abs(b.Vel.Y-5) > 1e-9 {
		t.Fatalf("spiral velocity = %v, want (0, 5)", b.Vel)
	}

	Breath(pool, origin, 100, common.Vec(900, 400), fixedRand{f: 0.5})
	b, _ = pool.Get(1)
	if d := common.Dist(b.Pos, origin); math.Abs(d-100) > 1e-9 {
		t.Fatalf("breath spawned %v from center, want 100", d)
	}
	if math.Abs(b.Vel.Y) > 1e-9 || b.Vel.X <= 0 {
		t.Fatalf("breath velocity = %v, want straight at target", b.Vel)
	}
}

func TestMadShotEdges(t *testing.T) {
	cases := []struct {
		name string
		f    float64
		on   func(p cp.Vector) bool
	}{
		{"top", 0.1, func(p cp.Vector) bool { return p.Y == 0 }},
		{"right", 0.3, func(p cp.Vector) bool { return p.X == common.ScreenWidth }},
		{"bottom", 0.6, func(p cp.Vector) bool { return p.Y == common.ScreenHeight }},
		{"left", 0.9, func(p cp.Vector) bool { return p.X == 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := component.NewEnemyBulletPool()
			MadShot(pool, fixedRand{f: c.f})
			b, _ := pool.Get(0)
			if !b.Active || !c.on(b.Pos) {
				t.Fatalf("bullet at %v", b.Pos)
			}
			if got := b.Vel.Length(); math.Abs(got-2) > 1e-9 {
				t.Fatalf("speed = %v, want 2", got)
			}
		})
	}
}

func TestVolleyStaysGroupAligned(t *testing.T) {
	pool := component.NewEnemyBulletPool()
	last := -1
	for k := 0; k < 75; k++ {
		origin := common.Vec(100+float64(k%12)*100, 100+float64(k/12)*100)
		last = Volley(pool, origin, fixedRand{f: 0.5})
		if want := (k % 71) * 10; last != want {
			t.Fatalf("volley %d starts at %d, want %d", k, last, want)
		}
	}
	if pool.Cursor() != 40 {
		t.Fatalf("cursor = %d, want 40", pool.Cursor())
	}

	b, _ := pool.Get(last)
	hit, idx := pool.TestPlayerCollision(b.Pos, false, component.ClearGroupOfTen)
	if !hit || idx != last {
		t.Fatalf("hit = %v at %d, want hit at %d", hit, idx, last)
	}
	for j := last; j < last+10; j++ {
		if b, _ := pool.Get(j); b.Active {
			t.Fatalf("bullet %d of the hit knife still active", j)
		}
	}
	if got := pool.ActiveCount(); got != 700 {
		t.Fatalf("active = %d, want 700", got)
	}
}
