package main

import (
	"log"

	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/ecs/system"
	"github.com/milk9111/slingshot/prefabs"
)

// Director owns scene bookkeeping: which scene is running and where each
// world event leads.
type Director struct {
	world   *ecs.World
	stages  prefabs.StagesSpec
	current prefabs.StageSpec
	verbose bool
}

var _ component.StageQuery = (*Director)(nil)

func NewDirector(w *ecs.World, stages prefabs.StagesSpec, verbose bool) *Director {
	return &Director{world: w, stages: stages, verbose: verbose}
}

// Enter resets the world in place into scene id.
func (d *Director) Enter(id component.StageID) error {
	spec, err := d.stages.Stage(id.String())
	if err != nil {
		return err
	}
	enemies, err := system.BuildEnemies(spec)
	if err != nil {
		return err
	}
	d.current = spec
	d.world.ResetStage(id, enemies)
	if d.verbose {
		log.Printf("stage: enter %s (%d enemies)", id, len(enemies))
	}
	return nil
}

// Restart restores the player and starts again from stage 1.
func (d *Director) Restart() error {
	d.world.ResetPlayer()
	return d.Enter(component.Stage1)
}

// SetStages swaps in a reloaded roster. It applies on the next Enter.
func (d *Director) SetStages(stages prefabs.StagesSpec) {
	d.stages = stages
}

// Handle follows the first scene-changing event of the tick.
func (d *Director) Handle(events []ecs.Event) error {
	for _, evt := range events {
		switch evt.Type {
		case ecs.EventStageCleared:
			return d.Enter(nextScene(d.world.Stage()))
		case ecs.EventPlayerDied:
			return d.Enter(component.SceneGameOver)
		case ecs.EventRestart:
			return d.Restart()
		}
	}
	return nil
}

func nextScene(id component.StageID) component.StageID {
	switch id {
	case component.Stage1:
		return component.Stage2
	case component.Stage2:
		return component.Stage3
	case component.Stage3:
		return component.SceneEnding
	}
	return component.SceneTitle
}

func (d *Director) Palette() string {
	return d.current.Palette
}

func (d *Director) IsStageActive(id component.StageID) bool {
	return d.world.IsStageActive(id)
}

func (d *Director) CurrentStage() component.StageID {
	return d.world.Stage()
}
