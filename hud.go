package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var sceneCaptions = map[component.StageID]string{
	component.SceneTitle:    "SLINGSHOT - drag back, release, hit the target to start",
	component.SceneEnding:   "THE END - click to return to title",
	component.SceneGameOver: "GAME OVER - hit the target to retry",
}

// HUD draws player HP, the last hit and scene captions.
type HUD struct {
	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, w *ecs.World) {
	if caption, ok := sceneCaptions[w.Stage()]; ok {
		h.text(screen, caption, common.ScreenWidth/2.0-float64(len(caption))*7/2, common.ScreenHeight/2.0+140, colornames.White)
	}
	if !w.Stage().IsStage() {
		return
	}
	p := w.Player()
	h.text(screen, fmt.Sprintf("HP %d/%d", int(p.Health.CurrentHP()), int(p.Health.MaxHP())), 12, common.ScreenHeight-24, colornames.White)

	if hit := w.Hits(); hit.Shown {
		s := fmt.Sprintf("-%d", int(math.Abs(hit.Damage)))
		h.text(screen, s, hit.Pos.X, hit.Pos.Y-float64(hit.Timer)/3, colornames.Yellow)
	}
}

func (h *HUD) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, h.face, op)
}

// DrawDebug prints counters for -debug runs.
func DrawDebug(screen *ebiten.Image, w *ecs.World) {
	msg := fmt.Sprintf("FPS: %.2f  tick: %d  stage: %s/%d\nbullets: %d (cursor %d)  shots cursor: %d",
		ebiten.ActualFPS(), w.Tick(), w.Stage(), w.StageTick(),
		w.Bullets().ActiveCount(), w.Bullets().Cursor(), w.Shots().Cursor())
	for _, e := range w.Enemies() {
		if e.Boss != nil && e.Alive() {
			msg += fmt.Sprintf("\nboss: %s t=%d hp=%.0f enraged=%v", e.Boss.Phase, e.Boss.Tick, e.CurrentHP(), e.Boss.Enraged)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}
