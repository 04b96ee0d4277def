package steering

import (
	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
)

// falloff is the shared quadratic law used by repulsion and boundary
// containment: zero at the edge of the radius, base at distance zero,
// monotonically decreasing in between.
func falloff(base, dist, radius float64) float64 {
	t := (radius - dist) / radius
	return base * t * t
}

// Repulsion sums a personal-space force away from every visible neighbor
// strictly inside comfortRadius. The magnitude follows the quadratic falloff
// above; the distance is clamped to epsilon before normalizing so coincident
// positions cannot produce NaN. No neighbor in range yields the zero vector.
func Repulsion(tc *TickContext, comfortRadius, baseForce float64) geometry.Vector2D {
	var total geometry.Vector2D
	for _, n := range tc.Neighbors {
		if n.Dist >= comfortRadius {
			continue
		}
		dist := n.Dist
		if dist < geometry.Epsilon {
			dist = geometry.Epsilon
		}
		away := tc.Self.Pos.Sub(n.Body.Pos).Normalize()
		if away.LenSqr() == 0 {
			// coincident bodies: push along the reverse bearing instead
			away = geometry.NewVectorPolar(1, n.Bearing+geometry.TwoPi/2)
		}
		total = total.Add(away.Mul(falloff(baseForce, dist, comfortRadius)))
	}
	return total
}

// CurrentForce is the ambient circular current: the unit perpendicular of
// the vector from pos toward the pond center (a fixed 90 degree
// counter-clockwise rotation), which drives a slow drift around the center.
// It depends on position only, never on other agents, so it can be swapped
// for a smarter guidance signal without touching any other term.
func CurrentForce(pos, center geometry.Vector2D) geometry.Vector2D {
	return center.Sub(pos).Perp().Normalize()
}

// BoundaryForce pushes an agent back inside when it drifts within margin of
// a world edge, per axis, growing quadratically toward the edge itself.
// Agents in the interior get the zero vector; there is no hard wall.
func BoundaryForce(pos geometry.Vector2D, width, height, margin, baseForce float64) geometry.Vector2D {
	var f geometry.Vector2D
	if pos.X < margin {
		f.X += falloff(baseForce, pos.X, margin)
	}
	if pos.X > width-margin {
		f.X -= falloff(baseForce, width-pos.X, margin)
	}
	if pos.Y < margin {
		f.Y += falloff(baseForce, pos.Y, margin)
	}
	if pos.Y > height-margin {
		f.Y -= falloff(baseForce, height-pos.Y, margin)
	}
	return f
}
