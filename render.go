package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"golang.org/x/image/colornames"
)

// palettes maps the palette hint of stages.yaml to a background color.
var palettes = map[string]color.Color{
	"title":     colornames.Midnightblue,
	"forest":    colornames.Darkolivegreen,
	"dusk":      colornames.Darkslateblue,
	"night":     colornames.Black,
	"game_over": colornames.Darkred,
}

var variantColors = map[component.Variant]color.Color{
	component.VariantBasic:  colornames.Orange,
	component.VariantBoss1:  colornames.Crimson,
	component.VariantBoss2:  colornames.Mediumpurple,
	component.VariantPixie:  colornames.Hotpink,
	component.VariantTarget: colornames.Gold,
}

// DrawWorld renders one snapshot of w, shaken while the player is freshly hit.
func DrawWorld(screen *ebiten.Image, w *ecs.World, palette string) {
	bg, ok := palettes[palette]
	if !ok {
		bg = colornames.Black
	}
	screen.Fill(bg)

	off := w.Player().ShakeOffset()
	for _, e := range w.Enemies() {
		drawEnemy(screen, e.Snapshot(), off)
	}
	for _, b := range w.Bullets().Snapshot() {
		circle(screen, b.Position.Add(off), b.Radius, colornames.Lightpink)
	}
	for _, s := range w.Shots().Snapshot() {
		if s.Active {
			circle(screen, s.Position.Add(off), s.Radius, colornames.Skyblue)
		}
	}
	drawPlayer(screen, w.Player(), off)
}

func drawEnemy(screen *ebiten.Image, s component.Snapshot, off cp.Vector) {
	if !s.Active {
		return
	}
	pos := s.Position.Add(off)
	clr := variantColors[s.Variant]
	if s.Invincible {
		clr = colornames.White
	}
	if s.Variant == component.VariantBoss2 {
		drawBoss(screen, s, pos, clr)
	} else {
		circle(screen, pos, s.Radius, clr)
	}
	if s.MaxHP > 0 && s.HP < s.MaxHP {
		drawHPBar(screen, pos, s)
	}
}

// drawBoss outlines the boss as a jittered polygon lifted by its sway.
func drawBoss(screen *ebiten.Image, s component.Snapshot, pos cp.Vector, clr color.Color) {
	pos.Y -= s.Sway
	circle(screen, pos, s.Radius*0.8, clr)
	n := len(s.Flicker)
	if n == 0 {
		return
	}
	vertex := func(i int) cp.Vector {
		return pos.Add(common.Polar(s.Radius*s.Flicker[i%n], 2*math.Pi*float64(i)/float64(n)))
	}
	for i := 0; i < n; i++ {
		a, b := vertex(i), vertex(i+1)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, clr, true)
	}
}

func drawHPBar(screen *ebiten.Image, pos cp.Vector, s component.Snapshot) {
	width := s.Radius * 2
	x := pos.X - s.Radius
	y := pos.Y - s.Radius - 15
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), 6, colornames.Dimgray, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*s.HP/s.MaxHP), 6, colornames.Limegreen, false)
}

func drawPlayer(screen *ebiten.Image, p *component.Player, off cp.Vector) {
	if p == nil {
		return
	}
	sl := p.Sling
	band := colornames.Tan
	line(screen, sl.BaseLeft.Add(off), sl.HandLeft.Add(off), band)
	line(screen, sl.BaseRight.Add(off), sl.HandRight.Add(off), band)

	if !p.Guard.Vulnerable() && p.Guard.Counter%4 < 2 {
		return
	}
	body := sl.Body.Add(off)
	circle(screen, body, common.PlayerRadius, colornames.Lightcyan)
	if sl.Ready {
		vector.StrokeCircle(screen, float32(body.X), float32(body.Y), common.PlayerRadius+4, 2, colornames.Yellow, true)
	}
}

func circle(screen *ebiten.Image, pos cp.Vector, r float64, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r), clr, true)
}

func line(screen *ebiten.Image, a, b cp.Vector, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
}
