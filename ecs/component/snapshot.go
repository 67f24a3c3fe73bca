package component

import "github.com/jakecoffman/cp"

// Snapshot is the read-only per-tick view handed to the renderer.
type Snapshot struct {
	Position   cp.Vector
	Velocity   cp.Vector
	Radius     float64
	Active     bool
	HP         float64
	MaxHP      float64
	Invincible bool
	Variant    Variant

	// Boss2 only.
	Flicker []float64
	Sway    float64
}
