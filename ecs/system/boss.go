package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// Boss cycle windows, in ticks modulo common.BossCycle.
const (
	chaseStart      = 60
	moveCenterStart = 240
	moveCenterEnd   = 300
	summonStart     = 660
	summonTick      = 860
	swayStart       = 800

	jumpSpeed   = 20.0
	jumpGravity = 2.0
	jumpEnd     = 40

	chaseSpeed  = 10.0
	chaseRetarg = 60
	chaseMove   = 50

	breathPerTick = 5
	madShotEvery  = 20
	flickerEvery  = 5
	centerTicks   = 30
	pulseSpan     = 360.0
	pulseGain     = 0.8
)

// PhaseAt returns the boss phase for cycle tick t.
func PhaseAt(t int) component.BossPhase {
	p := t % common.BossCycle
	if p < 0 {
		p += common.BossCycle
	}
	switch {
	case p < chaseStart:
		return component.PhaseJump
	case p < moveCenterStart:
		return component.PhaseChase
	case p <= moveCenterEnd:
		return component.PhaseMoveCenter
	case p < summonStart:
		return component.PhaseScrewAttack
	default:
		return component.PhaseSummonWindow
	}
}

// NewBoss2 returns the stage 3 boss with its dormant minions. The minions must
// be registered with the world alongside the boss.
func NewBoss2(pos cp.Vector, radius, hp float64) (*component.Enemy, []*component.Enemy) {
	boss := component.NewEnemy(component.VariantBoss2, pos, radius, hp)
	boss.InvTimer = 70
	boss.Boss = &component.BossState{}
	for i := range boss.Boss.Flicker {
		boss.Boss.Flicker[i] = 1
	}
	boss.Health.OnDamage = func(h *component.Health, _ component.CombatEvent) {
		if h.CurrentHP() <= common.BossEnragedHP {
			boss.Boss.Enraged = true
		}
	}
	boss.Health.OnDeath = func(*component.Health, component.CombatEvent) {
		for _, m := range boss.Boss.Minions {
			m.Kill()
		}
	}

	minions := make([]*component.Enemy, 0, len(boss.Boss.Minions))
	for i := range boss.Boss.Minions {
		m := component.NewEnemy(component.VariantPixie, common.Parked, 10, 1)
		m.Slot = i
		m.Pixie = &component.PixieState{}
		m.Kill()
		boss.Boss.Minions[i] = m
		minions = append(minions, m)
	}
	return boss, minions
}

// BossBehavior drives the stage 3 boss through its 900-tick cycle.
type BossBehavior struct{}

func (BossBehavior) Update(w *ecs.World, e *component.Enemy) {
	if w == nil || e == nil || e.Boss == nil {
		return
	}
	b := e.Boss
	t := b.Tick
	phase := t % common.BossCycle
	target := w.Player().Pos()
	pool := w.Bullets()
	rng := w.Rand()

	if next := PhaseAt(t); next != b.Phase || t == 0 {
		b.Phase = next
		b.Entered = t
		if next == component.PhaseMoveCenter {
			b.CenterFrom = e.Pos
		}
	}
	e.InvTimer++

	switch b.Phase {
	case component.PhaseJump:
		bossJump(e, phase)
	case component.PhaseChase:
		bossChase(e, t, target)
		if t%chaseRetarg < 30 && t > chaseStart {
			for i := 0; i < breathPerTick; i++ {
				Breath(pool, e.Pos, e.Radius, target, rng)
			}
		}
	case component.PhaseMoveCenter:
		if ct := phase - moveCenterStart; ct <= centerTicks {
			center := common.Vec(common.ScreenWidth/2.0, common.ScreenHeight/2.0)
			e.Pos = b.CenterFrom.Lerp(center, float64(ct)/centerTicks)
		}
	case component.PhaseScrewAttack:
		Spiral(pool, e.Pos, t, rng)
	case component.PhaseSummonWindow:
		if phase == summonTick {
			summonPixie(e)
		}
	}

	e.Radius = e.BaseRadius
	if phase > moveCenterEnd && phase < summonStart {
		e.Radius = e.BaseRadius * (1 + pulseGain*math.Sin(float64(phase-moveCenterEnd)/pulseSpan*math.Pi))
	}
	b.Sway = 0
	if phase >= swayStart && phase <= summonTick {
		b.Sway = math.Sin(float64(phase-swayStart)/60/2) * e.Radius
	}

	b.Enraged = e.CurrentHP() <= common.BossEnragedHP
	if b.Enraged {
		b.MadTimer++
		e.Pos.X += math.Sin(float64(b.MadTimer))
		if t%madShotEvery == 0 {
			MadShot(pool, rng)
		}
	}

	if t%flickerEvery == 0 && rng != nil {
		for i := range b.Flicker {
			b.Flicker[i] = 0.9 + 0.1*rng.NormFloat64()
		}
	}
	b.Tick++
}

func bossJump(e *component.Enemy, phase int) {
	b := e.Boss
	if phase == 0 || phase == int(2*jumpSpeed/jumpGravity) {
		b.JumpVY = -jumpSpeed
	}
	if phase < jumpEnd {
		b.JumpVY += jumpGravity
		e.Pos.Y += b.JumpVY
	}
}

func bossChase(e *component.Enemy, t int, target cp.Vector) {
	b := e.Boss
	if t%chaseRetarg == 0 {
		b.Vel = common.Polar(chaseSpeed, common.AngleTo(e.Pos, target))
	}
	if t%chaseRetarg >= chaseMove {
		return
	}
	if nx := e.Pos.X + b.Vel.X; nx > e.Radius && nx < common.ScreenWidth-e.Radius {
		e.Pos.X = nx
	}
	if ny := e.Pos.Y + b.Vel.Y; ny > e.Radius && ny < common.ScreenHeight-e.Radius {
		e.Pos.Y = ny
	}
}

// summonPixie revives the first dormant minion just below the boss.
func summonPixie(e *component.Enemy) {
	for _, m := range e.Boss.Minions {
		if m == nil || m.CurrentHP() > 0 {
			continue
		}
		m.Pos = e.Pos.Add(cp.Vector{Y: e.Radius})
		m.Health.Revive(1)
		m.Active = true
		m.InvTimer = common.PlayerInvincibility
		if m.Pixie != nil {
			m.Pixie.Vel = cp.Vector{}
		}
		return
	}
}

// PixieBehavior homes a summoned minion toward the player.
type PixieBehavior struct{}

func (PixieBehavior) Update(w *ecs.World, e *component.Enemy) {
	if w == nil || e == nil || e.Pixie == nil {
		return
	}
	px := e.Pixie
	if px.Tick%3 == 0 {
		dir := common.Polar(1, common.AngleTo(e.Pos, w.Player().Pos()))
		px.Vel = px.Vel.Mult(0.9).Add(dir)
	}
	e.Pos = e.Pos.Add(px.Vel)
	e.InvTimer++
	px.Tick++
}
