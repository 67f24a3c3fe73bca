package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs/component"
)

// volleyShape is the knife silhouette in the volley's rotated frame, as
// (along, across) pairs.
var volleyShape = [10][2]float64{
	{8, 0}, {-8, 0}, {24, 0}, {-24, 0},
	{0, 18}, {16, 18}, {-16, 18},
	{8, 36}, {-8, 36},
	{0, 54},
}

// Volley fires the ten-bullet knife from origin at a random base angle in
// [-5, 4] * pi/12. All bullets share one velocity perpendicular to the blade.
// The knife is written as one contiguous group. It returns the index of its
// first bullet.
func Volley(pool *component.EnemyBulletPool, origin cp.Vector, rng common.Rand) int {
	if pool == nil || rng == nil {
		return -1
	}
	step := int(rng.Float64()*10) - 5
	angle := float64(step) * math.Pi / 12
	c, s := math.Cos(angle), math.Sin(angle)
	vel := cp.Vector{X: -5 * s, Y: 5 * c}

	return pool.SpawnGroup(len(volleyShape), common.BulletRadius, func(j int) (cp.Vector, cp.Vector) {
		along, across := volleyShape[j][0], volleyShape[j][1]
		return origin.Add(cp.Vector{X: along*c - across*s, Y: along*s + across*c}), vel
	})
}

// RadialSpray emits one bullet on even ticks, pi/20*(rand(0,30)-15) off the
// downward vertical at speed 8.
func RadialSpray(pool *component.EnemyBulletPool, origin cp.Vector, tick int, rng common.Rand) bool {
	if pool == nil || rng == nil || tick%2 != 0 {
		return false
	}
	a := math.Pi / 20 * (rng.Float64()*30 - 15)
	pool.Spawn(origin, cp.Vector{X: 8 * math.Sin(a), Y: 8 * math.Cos(a)}, common.BulletRadius)
	return true
}

// UpdateHoming runs h for tick: it reserves a batch below origin, stretches
// it toward target and then fires the whole batch along one aim. The aim is
// re-read on every stretch tick and frozen once fired.
func UpdateHoming(h *component.HomingVolley, pool *component.EnemyBulletPool, origin, target cp.Vector, tick int) {
	if h == nil || pool == nil || h.Cycle <= 0 || h.Stretch <= 0 {
		return
	}
	phase := tick % h.Cycle
	muzzle := origin.Add(h.Muzzle)

	if phase == h.ReserveAt() {
		pool.Reserve(h.Size, muzzle, common.BulletRadius)
		h.Armed = true
	}
	if !h.Armed {
		return
	}

	d := common.Dist(muzzle, target)
	if d <= 0 {
		return
	}
	dir := target.Sub(muzzle).Mult(1 / d)

	if phase > h.ReserveAt() && phase <= h.FireAt() {
		progress := float64(phase - h.ReserveAt())
		stretch := float64(h.Stretch)
		pool.PlaceBatch(func(j int) cp.Vector {
			return muzzle.Add(dir.Mult(20 * float64(j) / stretch * progress))
		})
	}
	if phase == h.FireAt() {
		pool.FireBatch(dir.Mult(h.Speed))
		h.Armed = false
	}
}

// Spiral emits one bullet per tick, rotating a full turn every 100 ticks, at
// speed 5 + rand(0,10).
func Spiral(pool *component.EnemyBulletPool, origin cp.Vector, tick int, rng common.Rand) {
	if pool == nil || rng == nil {
		return
	}
	const turn = 100
	i := tick % turn
	if i < 0 {
		i += turn
	}
	speed := 5 + rng.Float64()*10
	pool.Spawn(origin, common.Polar(speed, 2*math.Pi*float64(i)/turn), common.BulletRadius)
}

// MadShot spawns a slow bullet on a random point of a random screen edge,
// heading into the field.
func MadShot(pool *component.EnemyBulletPool, rng common.Rand) {
	if pool == nil || rng == nil {
		return
	}
	const speed = 2.0
	edge := int(rng.Float64() * 4)
	var pos cp.Vector
	base := 0.0
	switch edge {
	case 0:
		pos = cp.Vector{X: rng.Float64() * common.ScreenWidth}
	case 1:
		pos = cp.Vector{X: common.ScreenWidth, Y: rng.Float64() * common.ScreenHeight}
		base = math.Pi / 2
	case 2:
		pos = cp.Vector{X: rng.Float64() * common.ScreenWidth, Y: common.ScreenHeight}
		base = math.Pi
	default:
		pos = cp.Vector{Y: rng.Float64() * common.ScreenHeight}
		base = 3 * math.Pi / 2
	}
	angle := base + math.Pi*rng.Float64()
	pool.Spawn(pos, common.Polar(speed, angle), common.BulletRadius)
}

// BreathSpread is the largest angular deviation of a breath bullet.
const BreathSpread = math.Pi / 5

// Breath emits one bullet from the rim of a body of the given radius, aimed at
// target with up to BreathSpread deviation and speed in [15, 25).
func Breath(pool *component.EnemyBulletPool, origin cp.Vector, radius float64, target cp.Vector, rng common.Rand) {
	if pool == nil || rng == nil {
		return
	}
	a := common.AngleTo(origin, target)
	dev := (rng.Float64()*2 - 1) * BreathSpread
	speed := 15 + rng.Float64()*10
	pos := origin.Add(common.Polar(radius, a))
	pool.Spawn(pos, common.Polar(speed, a+dev), common.BulletRadius)
}
