package steering

import (
	"math"
	"sort"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
)

// GapDirection finds the widest open angular gap between the bearings of the
// visible neighbors and returns the unit vector toward its midpoint. The
// boolean is false when there is no visible neighbor or no gap passes the
// clearance check; callers must not confuse that with "steer toward angle 0".
//
// A gap is an interval between two angularly adjacent bearings, including the
// wraparound interval that closes the circle. With a single neighbor in view
// the wraparound gap spans the whole rest of the circle, which is intentional:
// the open space is everything that is not the neighbor. A gap narrower than
// minGap is not really open and is skipped. A gap that survives the width
// test must also be clear in depth: we probe along its midpoint bearing for
// the nearest body inside a cone of +-probeHalfAngle, up to searchRadius, and
// take half that probe distance as the clearance radius. The circle of that
// radius centered clearance-radius out along the midpoint must contain no
// visible neighbor, otherwise the gap only looks open in angle while being
// occupied in depth.
func GapDirection(tc *TickContext, minGap, probeHalfAngle, searchRadius float64) (geometry.Vector2D, bool) {
	if len(tc.Neighbors) == 0 {
		return geometry.Vector2D{}, false
	}

	// All bearings already live in [0, 2*Pi); close the circle by repeating
	// the smallest one a full turn later.
	bearings := make([]float64, len(tc.Neighbors))
	for i, n := range tc.Neighbors {
		bearings[i] = n.Bearing
	}
	sort.Float64s(bearings)
	bearings = append(bearings, bearings[0]+geometry.TwoPi)

	var (
		bestWidth float64
		bestMid   float64
		found     bool
	)
	for i := 0; i < len(bearings)-1; i++ {
		width := bearings[i+1] - bearings[i]
		if width < minGap {
			continue
		}
		if found && width <= bestWidth {
			continue
		}
		mid := geometry.NormalizeAngle(bearings[i] + width/2)
		clearance := probe(tc, mid, probeHalfAngle, searchRadius) / 2
		if clearance < geometry.Epsilon {
			continue
		}
		if !gapIsClear(tc, mid, clearance) {
			continue
		}
		bestWidth, bestMid, found = width, mid, true
	}

	if !found {
		return geometry.Vector2D{}, false
	}
	return geometry.NewVectorPolar(1, bestMid), true
}

// probe returns the distance to the nearest visible body whose bearing lies
// within +-halfAngle of the probe bearing, or searchRadius when that cone is
// empty.
func probe(tc *TickContext, bearing, halfAngle, searchRadius float64) float64 {
	nearest := searchRadius
	for _, n := range tc.Neighbors {
		if bearingDiff(n.Bearing, bearing) > halfAngle {
			continue
		}
		if n.Dist < nearest {
			nearest = n.Dist
		}
	}
	return nearest
}

// gapIsClear rejects gaps that are occupied in depth: the circle of the
// claimed clearance radius, centered clearance out along the midpoint
// bearing, must contain no visible neighbor.
func gapIsClear(tc *TickContext, mid, clearance float64) bool {
	center := tc.Self.Pos.Add(geometry.NewVectorPolar(clearance, mid))
	for _, n := range tc.Neighbors {
		if n.Body.Pos.DistanceTo(center) < clearance {
			return false
		}
	}
	return true
}

// bearingDiff returns the smallest absolute difference between two bearings,
// in [0, Pi]. Both sides are wrapped first so the +-Pi seam cannot flip signs.
func bearingDiff(a, b float64) float64 {
	d := geometry.NormalizeAngle(a - b)
	if d > math.Pi {
		d = geometry.TwoPi - d
	}
	return d
}
