package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slingshot/assets"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/ecs/system"
	"github.com/milk9111/slingshot/prefabs"
)

type Config struct {
	Debug bool
	Stage int
	Watch bool
	Seed  uint64
	Mute  bool
}

type Game struct {
	cfg Config

	world    *ecs.World
	director *Director
	cadence  *system.ScriptCadence
	watcher  *prefabs.Watcher
	hud      *HUD

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg Config) (*Game, error) {
	stages, err := prefabs.LoadStagesSpec()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld(common.NewRand(cfg.Seed))
	cadence := system.NewScriptCadence(stages, nil)
	audio := system.Install(world, cadence, loadCues())
	audio.Muted = cfg.Mute

	g := &Game{
		cfg:      cfg,
		world:    world,
		director: NewDirector(world, stages, cfg.Debug),
		cadence:  cadence,
		hud:      NewHUD(),
	}
	g.pauseUI = NewPauseUI(g)

	start := component.SceneTitle
	if id := component.StageID(cfg.Stage); id.IsStage() {
		start = id
	}
	if err := g.director.Enter(start); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadCues returns the tone player, or nil when audio is unavailable.
func loadCues() system.Cues {
	spec, err := prefabs.LoadAudioSpec()
	if err != nil {
		log.Printf("audio: %v; sound disabled", err)
		return nil
	}
	cues, err := assets.NewToneCues(spec)
	if err != nil {
		log.Printf("audio: %v; sound disabled", err)
		return nil
	}
	return cues
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if PauseToggled() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.cfg.Debug {
		if id, ok := DebugScene(); ok {
			if err := g.director.Enter(id); err != nil {
				return err
			}
		}
	}
	g.reload()

	in := Poll()
	g.world.Update(in)
	if g.world.Stage() == component.SceneEnding && in.Pressed {
		return g.director.Enter(component.SceneTitle)
	}
	return g.director.Handle(g.world.Events().Items())
}

// reload picks up prefab edits between ticks. New rosters apply on the next
// scene change; scripts apply at once.
func (g *Game) reload() {
	if !g.watcher.Changed() {
		return
	}
	stages, err := prefabs.LoadStagesSpec()
	if err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	g.director.SetStages(stages)
	g.cadence.Load(stages, nil)
	log.Printf("prefabs: reloaded")
}

func (g *Game) restart() {
	if err := g.director.Restart(); err != nil {
		log.Printf("stage: restart: %v", err)
	}
	g.paused = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	DrawWorld(screen, g.world, g.director.Palette())
	g.hud.Draw(screen, g.world)
	if g.cfg.Debug {
		DrawDebug(screen, g.world)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
