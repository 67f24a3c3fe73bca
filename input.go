package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs/component"
)

// debugKeys maps number keys to scenes while -debug is set.
var debugKeys = map[ebiten.Key]component.StageID{
	ebiten.Key0: component.SceneTitle,
	ebiten.Key1: component.Stage1,
	ebiten.Key2: component.Stage2,
	ebiten.Key3: component.Stage3,
	ebiten.Key4: component.SceneEnding,
}

// Poll samples the mouse once for the coming tick.
func Poll() component.Input {
	mx, my := ebiten.CursorPosition()
	return component.Input{
		Cursor:   common.Vec(float64(mx), float64(my)),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// PauseToggled reports a press of P or Escape.
func PauseToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// DebugScene returns the scene of a just pressed debug key.
func DebugScene() (component.StageID, bool) {
	for k, id := range debugKeys {
		if inpututil.IsKeyJustPressed(k) {
			return id, true
		}
	}
	return component.SceneTitle, false
}
