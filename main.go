package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slingshot/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and scene keys 0-4")
	stage := flag.Int("stage", 0, "start directly in stage 1-3 (0 = title)")
	watch := flag.Bool("watch", false, "hot reload prefabs/ and prefabs/scripts/")
	seed := flag.Uint64("seed", 0, "random seed (0 = time based)")
	mute := flag.Bool("mute", false, "disable sound")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("slingshot")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Config{
		Debug: *debug,
		Stage: *stage,
		Watch: *watch,
		Seed:  *seed,
		Mute:  *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
