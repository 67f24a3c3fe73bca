package ecs

import (
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs/component"
)

// World owns the simulation state of one play session. Each pool has a single
// owner; systems reach it only through the accessors below.
type World struct {
	tick      int
	stageTick int
	stage     component.StageID
	resets    int

	scheduler *Scheduler
	events    EventQueue

	input   component.Input
	player  *component.Player
	shots   *component.ProjectileSlots
	bullets *component.EnemyBulletPool
	enemies []*component.Enemy
	hits    component.HitDisplay
	rng     common.Rand
}

// NewWorld allocates the pools once; ResetStage reuses them.
func NewWorld(rng common.Rand) *World {
	if rng == nil {
		rng = common.NewRand(1)
	}
	return &World{
		scheduler: NewScheduler(),
		player:    component.NewPlayer(common.Vec(common.ScreenWidth/2.0, common.ScreenHeight/2.0)),
		shots:     component.NewProjectileSlots(),
		bullets:   component.NewEnemyBulletPool(),
		rng:       rng,
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs one tick: last tick's events are dropped, counters advance and
// every system runs once.
func (w *World) Update(in component.Input) {
	if w == nil {
		return
	}
	w.events.flush()
	w.input = in
	w.tick++
	if w.stage.IsStage() {
		w.stageTick++
	}
	w.scheduler.Update(w)
}

// ResetStage switches to stage, clearing pools and the stage counter in place.
func (w *World) ResetStage(stage component.StageID, enemies []*component.Enemy) {
	if w == nil {
		return
	}
	w.stage = stage
	w.stageTick = 0
	w.resets++
	w.shots.Reset()
	w.bullets.ClearAll()
	w.enemies = enemies
	w.hits = component.HitDisplay{}
}

// ResetPlayer restores full health and a resting sling at the field center.
func (w *World) ResetPlayer() {
	if w == nil {
		return
	}
	pos := w.player.Pos()
	w.player = component.NewPlayer(pos)
}

func (w *World) Tick() int {
	if w == nil {
		return 0
	}
	return w.tick
}

// StageTick counts ticks spent in the current stage.
func (w *World) StageTick() int {
	if w == nil {
		return 0
	}
	return w.stageTick
}

// Resets counts ResetStage calls.
func (w *World) Resets() int {
	if w == nil {
		return 0
	}
	return w.resets
}

func (w *World) Stage() component.StageID {
	if w == nil {
		return component.SceneTitle
	}
	return w.stage
}

// IsStageActive implements component.StageQuery.
func (w *World) IsStageActive(id component.StageID) bool {
	return w != nil && w.stage == id
}

// CurrentStage implements component.StageQuery.
func (w *World) CurrentStage() component.StageID {
	return w.Stage()
}

func (w *World) Input() component.Input {
	if w == nil {
		return component.Input{}
	}
	return w.input
}

func (w *World) Player() *component.Player {
	if w == nil {
		return nil
	}
	return w.player
}

func (w *World) Shots() *component.ProjectileSlots {
	if w == nil {
		return nil
	}
	return w.shots
}

func (w *World) Bullets() *component.EnemyBulletPool {
	if w == nil {
		return nil
	}
	return w.bullets
}

func (w *World) Enemies() []*component.Enemy {
	if w == nil {
		return nil
	}
	return w.enemies
}

// AddEnemy registers an enemy created mid-stage.
func (w *World) AddEnemy(e *component.Enemy) {
	if w == nil || e == nil {
		return
	}
	w.enemies = append(w.enemies, e)
}

func (w *World) Hits() *component.HitDisplay {
	if w == nil {
		return nil
	}
	return &w.hits
}

func (w *World) Rand() common.Rand {
	if w == nil {
		return nil
	}
	return w.rng
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
