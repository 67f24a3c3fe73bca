package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// OffScreen is where consumed projectiles are parked.
var OffScreen = cp.Vector{X: ScreenWidth + 100, Y: ScreenHeight + 100}

// Parked is where dead enemies and spent bullets are parked.
var Parked = cp.Vector{X: -100, Y: -100}

func Vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

func Dist(a, b cp.Vector) float64 {
	return a.Distance(b)
}

// AngleTo returns the angle of the line from -> to.
func AngleTo(from, to cp.Vector) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Polar returns a vector of the given magnitude pointing along angle.
func Polar(mag, angle float64) cp.Vector {
	return cp.ForAngle(angle).Mult(mag)
}

func Mid(a, b cp.Vector) cp.Vector {
	return a.Lerp(b, 0.5)
}

// ClampToField keeps p at least margin away from every screen edge.
func ClampToField(p cp.Vector, margin float64) cp.Vector {
	return cp.Vector{
		X: ClampF(p.X, margin, ScreenWidth-margin),
		Y: ClampF(p.Y, margin, ScreenHeight-margin),
	}
}

// OutsideField reports whether p has left the screen by at least margin.
func OutsideField(p cp.Vector, margin float64) bool {
	return p.X <= -margin || p.X >= ScreenWidth+margin ||
		p.Y <= -margin || p.Y >= ScreenHeight+margin
}
