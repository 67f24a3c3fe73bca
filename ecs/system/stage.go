package system

import (
	"fmt"

	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/prefabs"
)

// BuildEnemies creates the roster of a stage. Stage 3 minions are appended
// after their boss.
func BuildEnemies(spec prefabs.StageSpec) ([]*component.Enemy, error) {
	out := make([]*component.Enemy, 0, len(spec.Enemies)+2)
	for _, es := range spec.Enemies {
		v, ok := component.ParseVariant(es.Variant)
		if !ok {
			return nil, fmt.Errorf("stage %s: unknown variant %q", spec.Name, es.Variant)
		}
		pos := common.Vec(es.X, es.Y)
		switch v {
		case component.VariantBoss1:
			out = append(out, NewBoss1(pos, es.Radius, es.HP))
		case component.VariantBoss2:
			boss, minions := NewBoss2(pos, es.Radius, es.HP)
			out = append(out, boss)
			out = append(out, minions...)
		default:
			e := component.NewEnemy(v, pos, es.Radius, es.HP)
			e.Slot = es.Slot
			out = append(out, e)
		}
	}
	return out, nil
}

// StageCleared reports whether every enemy of a roster, minions aside, is
// down. An empty roster is never cleared.
func StageCleared(enemies []*component.Enemy) bool {
	seen := false
	for _, e := range enemies {
		if e == nil || e.Variant == component.VariantPixie {
			continue
		}
		seen = true
		if e.CurrentHP() > 0 {
			return false
		}
	}
	return seen
}

// StageSystem reports stage clear and player death, each once per stage.
type StageSystem struct {
	resets  int
	cleared bool
	died    bool
}

func NewStageSystem() *StageSystem { return &StageSystem{} }

func (s *StageSystem) Update(w *ecs.World) {
	if w.Resets() != s.resets {
		s.resets = w.Resets()
		s.cleared = false
		s.died = false
	}
	if !w.Stage().IsStage() {
		return
	}
	if p := w.Player(); !s.died && p != nil && !p.Health.IsAlive() {
		s.died = true
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied})
		return
	}
	if !s.cleared && StageCleared(w.Enemies()) {
		s.cleared = true
		w.Events().Push(ecs.Event{Type: ecs.EventStageCleared, Data: w.Stage()})
	}
}

// Install registers the simulation systems on w in update order.
func Install(w *ecs.World, cadence Cadence, cues Cues) *AudioSystem {
	audio := NewAudioSystem(cues)
	w.AddSystem(NewPlayerSystem())
	w.AddSystem(NewProjectileSystem())
	w.AddSystem(NewEnemySystem(cadence))
	w.AddSystem(NewBulletSystem())
	w.AddSystem(NewCollisionSystem())
	w.AddSystem(NewHitDisplaySystem())
	w.AddSystem(NewStageSystem())
	w.AddSystem(audio)
	return audio
}
