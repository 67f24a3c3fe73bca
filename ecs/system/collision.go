package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// checkedSlots is how many projectile slots are tested against each enemy.
const checkedSlots = 3

// Hit is one projectile consumed by an enemy.
type Hit struct {
	Enemy  *component.Enemy
	Slot   int
	Pos    cp.Vector
	Damage float64
	Lethal bool
	Cue    component.Cue
}

// CollisionResolver pairs shots with enemies and the player with enemies and
// enemy bullets. It decides damage and which cue applies; playing the cue is
// left to the caller.
type CollisionResolver struct {
	Emitter *component.CombatEventEmitter

	frame int
}

func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{Emitter: &component.CombatEventEmitter{}}
}

// Tick advances the frame stamped on emitted events.
func (r *CollisionResolver) Tick() {
	if r == nil {
		return
	}
	r.frame++
}

// Resolve tests every live enemy against the first slots of shots. The first
// slot within radius+HitPadding wins: the enemy loses |damage| HP (clamped at
// zero) and the slot is parked. The cue is chosen from the HP before damage.
func (r *CollisionResolver) Resolve(shots *component.ProjectileSlots, enemies []*component.Enemy, restartScene bool) []Hit {
	if r == nil || shots == nil || len(enemies) == 0 {
		return nil
	}
	n := min(checkedSlots, shots.Len())

	var hits []Hit
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		for i := 0; i < n; i++ {
			slot, _ := shots.Slot(i)
			if !slot.Active {
				continue
			}
			if common.Dist(e.Pos, slot.Pos) >= e.Radius+common.HitPadding {
				continue
			}

			dmg := math.Abs(slot.Damage)
			cue := shotCue(restartScene, dmg, e.CurrentHP())
			evt := component.CombatEvent{
				Type:    component.EventHit,
				Target:  e.Variant,
				Slot:    i,
				Damage:  dmg,
				Frame:   r.frame,
				Pos:     e.Pos,
				CueHint: cue,
			}
			r.emit(evt)

			_, lethal := e.Health.ApplyDamage(dmg, evt)
			shots.Deactivate(i)
			e.InvTimer = 0

			evt.Type = component.EventDamageApplied
			evt.Lethal = lethal
			r.emit(evt)
			hits = append(hits, Hit{Enemy: e, Slot: i, Pos: e.Pos, Damage: dmg, Lethal: lethal, Cue: cue})
			if lethal {
				evt.Type = component.EventDeath
				r.emit(evt)
				e.Kill()
			}
			break
		}
	}
	return hits
}

func shotCue(restartScene bool, damage, hp float64) component.Cue {
	switch {
	case restartScene:
		return component.CueRestart
	case damage < hp:
		return component.CueHit
	}
	return component.CueKill
}

// ResolvePlayerEnemy takes one HP from the player for the first live enemy
// touching it while the player is vulnerable. The caller resets the
// player's grace counter on a hit.
func (r *CollisionResolver) ResolvePlayerEnemy(p *component.Player, enemies []*component.Enemy) (bool, component.Cue) {
	if r == nil || p == nil || !p.Guard.Vulnerable() || !p.Health.IsAlive() {
		return false, component.CueNone
	}
	for _, e := range enemies {
		if !e.Alive() || e.Variant == component.VariantTarget {
			continue
		}
		if common.Dist(p.Pos(), e.Pos) > e.Radius+common.PlayerRadius {
			continue
		}
		return true, r.damagePlayer(p, e.Variant)
	}
	return false, component.CueNone
}

// ResolvePlayerBullets takes one HP from the player when enemy bullets touch
// it, applying the bulk-clear rule of stage. The event names the stage's
// shooter as its source.
func (r *CollisionResolver) ResolvePlayerBullets(p *component.Player, pool *component.EnemyBulletPool, stage component.StageID) (bool, component.Cue) {
	if r == nil || p == nil || pool == nil || !p.Health.IsAlive() {
		return false, component.CueNone
	}
	hit, _ := pool.TestPlayerCollision(p.Pos(), !p.Guard.Vulnerable(), stage.ClearRule())
	if !hit {
		return false, component.CueNone
	}
	return true, r.damagePlayer(p, stage.Shooter())
}

func (r *CollisionResolver) damagePlayer(p *component.Player, by component.Variant) component.Cue {
	evt := component.CombatEvent{
		Type:   component.EventPlayerHit,
		Target: by,
		Damage: 1,
		Frame:  r.frame,
		Pos:    p.Pos(),
	}
	_, lethal := p.Health.ApplyDamage(1, evt)
	evt.Lethal = lethal
	if lethal {
		evt.CueHint = component.CuePlayerDeath
	} else {
		evt.CueHint = component.CuePlayerDamage
	}
	r.emit(evt)
	return evt.CueHint
}

func (r *CollisionResolver) emit(evt component.CombatEvent) {
	if r.Emitter != nil {
		r.Emitter.Emit(evt)
	}
}

// CollisionSystem runs the resolver once per tick and publishes the outcome
// on the world event queue.
type CollisionSystem struct {
	resolver *CollisionResolver
	pending  []component.CombatEvent
}

func NewCollisionSystem() *CollisionSystem {
	s := &CollisionSystem{resolver: NewCollisionResolver()}
	s.resolver.Emitter.Handlers = append(s.resolver.Emitter.Handlers, func(evt component.CombatEvent) {
		s.pending = append(s.pending, evt)
	})
	return s
}

// Resolver exposes the resolver so callers can attach handlers.
func (s *CollisionSystem) Resolver() *CollisionResolver {
	return s.resolver
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.resolver.Tick()
	events := w.Events()
	p := w.Player()
	stage := w.Stage()

	if stage.IsStage() {
		if hit, cue := s.resolver.ResolvePlayerEnemy(p, w.Enemies()); hit {
			p.Guard.Reset()
			events.Push(ecs.CueEvent(cue))
		}
		if hit, cue := s.resolver.ResolvePlayerBullets(p, w.Bullets(), stage); hit {
			p.Guard.Reset()
			events.Push(ecs.CueEvent(cue))
		}
	}

	for _, h := range s.resolver.Resolve(w.Shots(), w.Enemies(), stage.RestartScene()) {
		events.Push(ecs.CueEvent(h.Cue))
		if h.Enemy.Variant == component.VariantTarget {
			if h.Lethal {
				events.Push(ecs.Event{Type: ecs.EventRestart, Data: stage})
			}
			continue
		}
		w.Hits().Show(h.Pos, h.Damage)
	}

	for _, evt := range s.pending {
		events.Push(ecs.Event{Type: ecs.EventCombat, Data: evt})
	}
	s.pending = s.pending[:0]
}
