package system

import (
	"testing"

	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/prefabs"
)

func TestBuildEnemies(t *testing.T) {
	stages, err := prefabs.LoadStagesSpec()
	if err != nil {
		t.Fatalf("load stages: %v", err)
	}

	cases := []struct {
		stage    component.StageID
		variants []component.Variant
		hp       float64
	}{
		{component.SceneTitle, []component.Variant{component.VariantTarget}, 1},
		{component.Stage1, []component.Variant{component.VariantBasic, component.VariantBasic, component.VariantBasic}, 16},
		{component.Stage2, []component.Variant{component.VariantBoss1}, 80},
		{component.Stage3, []component.Variant{component.VariantBoss2, component.VariantPixie, component.VariantPixie}, 160},
		{component.SceneEnding, nil, 0},
	}

	for _, c := range cases {
		t.Run(c.stage.String(), func(t *testing.T) {
			spec, err := stages.Stage(c.stage.String())
			if err != nil {
				t.Fatalf("stage: %v", err)
			}
			enemies, err := BuildEnemies(spec)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if len(enemies) != len(c.variants) {
				t.Fatalf("got %d enemies, want %d", len(enemies), len(c.variants))
			}
			for i, e := range enemies {
				if e.Variant != c.variants[i] {
					t.Fatalf("enemy %d is %v, want %v", i, e.Variant, c.variants[i])
				}
			}
			if len(enemies) > 0 && enemies[0].CurrentHP() != c.hp {
				t.Fatalf("hp = %v, want %v", enemies[0].CurrentHP(), c.hp)
			}
		})
	}
}

func TestBuildEnemiesStage1Layout(t *testing.T) {
	stages, err := prefabs.LoadStagesSpec()
	if err != nil {
		t.Fatalf("load stages: %v", err)
	}
	spec, _ := stages.Stage("stage1")
	enemies, _ := BuildEnemies(spec)
	for i, e := range enemies {
		y := 100.0
		if i == 1 {
			y = 200
		}
		want := common.Vec(common.ScreenWidth/2.0+float64(i-1)*100, y)
		if e.Pos != want || e.Slot != i {
			t.Fatalf("enemy %d at %v slot %d, want %v slot %d", i, e.Pos, e.Slot, want, i)
		}
	}
}

func TestBuildEnemiesUnknownVariant(t *testing.T) {
	_, err := BuildEnemies(prefabs.StageSpec{Name: "x", Enemies: []prefabs.EnemySpec{{Variant: "dragon"}}})
	if err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestStageSystemReportsOnce(t *testing.T) {
	e := component.NewEnemy(component.VariantBasic, common.Vec(300, 100), 50, 16)
	w := newStageWorld(component.Stage1, e)
	w.AddSystem(NewStageSystem())

	count := func() (cleared, died int) {
		for _, evt := range w.Events().Items() {
			switch evt.Type {
			case ecs.EventStageCleared:
				cleared++
			case ecs.EventPlayerDied:
				died++
			}
		}
		return
	}

	w.Update(component.Input{})
	if c, _ := count(); c != 0 {
		t.Fatalf("cleared with a live enemy")
	}

	e.Kill()
	w.Update(component.Input{})
	if c, _ := count(); c != 1 {
		t.Fatalf("cleared events = %d, want 1", c)
	}
	w.Update(component.Input{})
	if c, _ := count(); c != 0 {
		t.Fatalf("cleared reported twice")
	}

	w.Player().Health.SetCurrentHP(0)
	w.Player().Health.Dead = true
	w.Update(component.Input{})
	if _, d := count(); d != 1 {
		t.Fatalf("died events = %d, want 1", d)
	}

	w.ResetStage(component.Stage1, []*component.Enemy{component.NewEnemy(component.VariantBasic, common.Vec(300, 100), 50, 16)})
	w.ResetPlayer()
	e2 := w.Enemies()[0]
	e2.Kill()
	w.Update(component.Input{})
	if c, _ := count(); c != 1 {
		t.Fatalf("cleared not reported again after reset")
	}
}

func TestEnemySystemVolleyCadence(t *testing.T) {
	enemies := []*component.Enemy{
		component.NewEnemy(component.VariantBasic, common.Vec(500, 100), 50, 16),
		component.NewEnemy(component.VariantBasic, common.Vec(600, 200), 50, 16),
	}
	w := newStageWorld(component.Stage1, enemies...)
	w.AddSystem(NewEnemySystem(EveryN(60)))

	for i := 0; i < 59; i++ {
		w.Update(component.Input{})
	}
	if got := w.Bullets().ActiveCount(); got != 0 {
		t.Fatalf("bullets before cadence = %d", got)
	}
	w.Update(component.Input{})
	if got := w.Bullets().ActiveCount(); got != 2*len(volleyShape) {
		t.Fatalf("bullets = %d, want %d", got, 2*len(volleyShape))
	}
}

func TestOrbitPosition(t *testing.T) {
	cx, cy := common.ScreenWidth/2.0, common.ScreenHeight/4.0
	cases := []struct {
		name string
		tick int
		want [2]float64
	}{
		{"rest", 400, [2]float64{cx, cy}},
		{"start", 0, [2]float64{cx, cy}},
		{"first_loop_far_side", 75, [2]float64{cx + 300, cy}},
		{"crossing", 150, [2]float64{cx, cy}},
		{"second_loop_far_side", 225, [2]float64{cx - 300, cy}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := OrbitPosition(c.tick)
			if common.Dist(got, common.Vec(c.want[0], c.want[1])) > 1e-6 {
				t.Fatalf("OrbitPosition(%d) = %v, want %v", c.tick, got, c.want)
			}
		})
	}
}
