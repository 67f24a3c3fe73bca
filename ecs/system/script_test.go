package system

import (
	"errors"
	"testing"

	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/prefabs"
)

func scriptStages(cadence int) prefabs.StagesSpec {
	return prefabs.StagesSpec{Stages: []prefabs.StageSpec{
		{Name: "stage1", Cadence: cadence, Script: "stage1.tengo"},
		{Name: "stage2", Cadence: 30},
	}}
}

func TestScriptCadence(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		stage component.StageID
		fires []int
		quiet []int
	}{
		{"cadence_script", "fire := cadence > 0 && tick % cadence == 0", component.Stage1, []int{40, 80}, []int{1, 60}},
		{"custom_script", "fire := tick % 7 == 3", component.Stage1, []int{3, 10}, []int{7, 40}},
		{"compile_error_falls_back", "fire := (", component.Stage1, []int{40, 80}, []int{3}},
		{"non_bool_falls_back", "fire := 3", component.Stage1, []int{40, 80}, []int{3}},
		{"stage_without_script", "fire := true", component.Stage2, []int{30, 60}, []int{1, 40}},
		{"unknown_stage_default", "fire := true", component.Stage3, []int{60}, []int{30}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			load := func(string) ([]byte, error) { return []byte(c.src), nil }
			cad := NewScriptCadence(scriptStages(40), load)
			for _, tick := range c.fires {
				if !cad.Fire(c.stage, tick) {
					t.Fatalf("tick %d did not fire", tick)
				}
			}
			for _, tick := range c.quiet {
				if cad.Fire(c.stage, tick) {
					t.Fatalf("tick %d fired", tick)
				}
			}
		})
	}
}

func TestEmbeddedStageScript(t *testing.T) {
	stages, err := prefabs.LoadStagesSpec()
	if err != nil {
		t.Fatalf("load stages: %v", err)
	}
	cad := NewScriptCadence(stages, nil)
	if cad.scripts[component.Stage1] == nil {
		t.Fatalf("stage1 script not compiled")
	}
	if !cad.Fire(component.Stage1, 60) || cad.Fire(component.Stage1, 61) {
		t.Fatalf("embedded stage1 script does not fire every 60 ticks")
	}
}

func TestStageScriptResult(t *testing.T) {
	rt, err := compileStageScript("x", 60, func(string) ([]byte, error) { return []byte(`fire := "yes"`), nil })
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := rt.run(1); !errors.Is(err, ErrScriptResult) {
		t.Fatalf("err = %v, want ErrScriptResult", err)
	}
}
