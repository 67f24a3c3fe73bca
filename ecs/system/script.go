package system

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/prefabs"
)

// ErrScriptResult is returned when a stage script does not leave a bool in
// its fire variable.
var ErrScriptResult = errors.New("stage script: fire is not a bool")

const defaultCadence = 60

type stageScript struct {
	name     string
	compiled *tengo.Compiled
	cadence  int
}

// ScriptCadence asks each stage's tengo script whether the stage generator
// fires on a tick. Stages without a script, or whose script fails, fire every
// cadence ticks.
type ScriptCadence struct {
	scripts  map[component.StageID]*stageScript
	fallback map[component.StageID]EveryN

	cached      bool
	cachedStage component.StageID
	cachedTick  int
	cachedFire  bool
}

// NewScriptCadence compiles the scripts named in stages. load resolves a
// script name to its source; nil uses prefabs.LoadScript.
func NewScriptCadence(stages prefabs.StagesSpec, load func(string) ([]byte, error)) *ScriptCadence {
	c := &ScriptCadence{}
	c.Load(stages, load)
	return c
}

// Load replaces every stage script and cadence with the ones in stages.
func (c *ScriptCadence) Load(stages prefabs.StagesSpec, load func(string) ([]byte, error)) {
	if c == nil {
		return
	}
	if load == nil {
		load = prefabs.LoadScript
	}
	c.scripts = map[component.StageID]*stageScript{}
	c.fallback = map[component.StageID]EveryN{}
	c.cached = false
	for id := component.SceneTitle; id <= component.SceneGameOver; id++ {
		st, err := stages.Stage(id.String())
		if err != nil {
			continue
		}
		cadence := st.Cadence
		if cadence <= 0 {
			cadence = defaultCadence
		}
		c.fallback[id] = EveryN(cadence)
		if strings.TrimSpace(st.Script) == "" {
			continue
		}
		rt, err := compileStageScript(st.Script, cadence, load)
		if err != nil {
			log.Printf("stage: %s script %s: %v; using built-in cadence", id, st.Script, err)
			continue
		}
		c.scripts[id] = rt
	}
}

func compileStageScript(name string, cadence int, load func(string) ([]byte, error)) (*stageScript, error) {
	src, err := load(name)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("cadence", cadence)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &stageScript{name: name, compiled: compiled, cadence: cadence}, nil
}

// Fire implements Cadence. The answer is cached for the current tick so every
// enemy of a stage sees the same decision.
func (c *ScriptCadence) Fire(stage component.StageID, tick int) bool {
	if c == nil {
		return EveryN(defaultCadence).Fire(stage, tick)
	}
	if c.cached && c.cachedStage == stage && c.cachedTick == tick {
		return c.cachedFire
	}
	fire := c.fire(stage, tick)
	c.cached, c.cachedStage, c.cachedTick, c.cachedFire = true, stage, tick, fire
	return fire
}

func (c *ScriptCadence) fire(stage component.StageID, tick int) bool {
	fallback, ok := c.fallback[stage]
	if !ok {
		fallback = EveryN(defaultCadence)
	}
	rt := c.scripts[stage]
	if rt == nil {
		return fallback.Fire(stage, tick)
	}
	fire, err := rt.run(tick)
	if err != nil {
		log.Printf("stage: %s script %s: %v; using built-in cadence", stage, rt.name, err)
		delete(c.scripts, stage)
		return fallback.Fire(stage, tick)
	}
	return fire
}

func (rt *stageScript) run(tick int) (bool, error) {
	if err := rt.compiled.Set("tick", tick); err != nil {
		return false, err
	}
	if err := rt.compiled.Set("cadence", rt.cadence); err != nil {
		return false, err
	}
	if err := rt.compiled.Run(); err != nil {
		return false, err
	}
	if !rt.compiled.IsDefined("fire") {
		return false, fmt.Errorf("%w: fire is undefined", ErrScriptResult)
	}
	v := rt.compiled.Get("fire")
	if v.ValueType() != "bool" {
		return false, fmt.Errorf("%w: got %s", ErrScriptResult, v.ValueType())
	}
	return v.Bool(), nil
}
