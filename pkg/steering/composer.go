package steering

import (
	"math"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
)

// Weights are the per-term multipliers applied by Compose.
type Weights struct {
	Gap       float64
	Repulsion float64
	Current   float64
	Boundary  float64
}

// Config holds the immutable scalar parameters of the force model.
// The world builds it from the run configuration; nothing here changes
// mid-tick.
type Config struct {
	// Perception
	ViewDistance float64
	FieldOfView  float64 // full cone angle, radians

	// Gap steering
	MinGap            float64 // narrower gaps are not really open
	GapProbeHalfAngle float64
	GapSearchRadius   float64

	// Personal space
	ComfortRadius  float64
	RepulsionForce float64

	// World terms
	WorldWidth      float64
	WorldHeight     float64
	BoundaryMargin  float64
	BoundaryForce   float64
	CurrentCenter   geometry.Vector2D
	CurrentStrength float64

	// Speed envelope
	MinSpeed float64
	MaxSpeed float64

	Weights Weights
}

// Compose combines the four force terms for one agent into the net force for
// this tick. The gap term contributes zero when no valid gap exists. Any term
// that comes back NaN or Inf is an invariant violation and is clamped to zero
// instead of being propagated into the velocity.
func Compose(tc *TickContext, cfg Config) geometry.Vector2D {
	gap := geometry.Vector2D{}
	if dir, ok := GapDirection(tc, cfg.MinGap, cfg.GapProbeHalfAngle, cfg.GapSearchRadius); ok {
		gap = dir
	}
	repulsion := Repulsion(tc, cfg.ComfortRadius, cfg.RepulsionForce)
	current := CurrentForce(tc.Self.Pos, cfg.CurrentCenter).Mul(cfg.CurrentStrength)
	boundary := BoundaryForce(tc.Self.Pos, cfg.WorldWidth, cfg.WorldHeight, cfg.BoundaryMargin, cfg.BoundaryForce)

	net := sanitize(gap).Mul(cfg.Weights.Gap).
		Add(sanitize(repulsion).Mul(cfg.Weights.Repulsion)).
		Add(sanitize(current).Mul(cfg.Weights.Current)).
		Add(sanitize(boundary).Mul(cfg.Weights.Boundary))
	return sanitize(net)
}

// ClampSpeed enforces the speed envelope on a post-integration velocity:
// above max it is rescaled down, below min it is rescaled up, so an active
// agent never stalls and never overshoots. A near-zero velocity has no usable
// direction; it leaves along its heading convention (positive X axis).
func ClampSpeed(vel geometry.Vector2D, minSpeed, maxSpeed float64) geometry.Vector2D {
	speed := vel.Len()
	switch {
	case speed > maxSpeed:
		return vel.Mul(maxSpeed / speed)
	case speed < minSpeed:
		if speed < geometry.Epsilon {
			return geometry.NewVectorPolar(minSpeed, 0)
		}
		return vel.Mul(minSpeed / speed)
	default:
		return vel
	}
}

// sanitize zeroes a force with a non-finite component.
func sanitize(v geometry.Vector2D) geometry.Vector2D {
	if math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
		return geometry.Vector2D{}
	}
	return v
}
