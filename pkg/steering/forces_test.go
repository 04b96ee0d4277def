package steering

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
)

func TestRepulsion_NoNeighbors(t *testing.T) {
	tc := &TickContext{Self: body("self", 0, 0, 1, 0, true)}
	if got := Repulsion(tc, 20, 1); !got.Eq(geometry.Vector2D{}) {
		t.Errorf("no neighbors must yield the zero vector, got %v", got)
	}
}

func TestRepulsion_PushesAway(t *testing.T) {
	self := body("self", 0, 0, 1, 0, true)
	tc := NewTickContext(self, []Body{body("n", 5, 0, 0, 0, true)}, 100, geometry.TwoPi)

	got := Repulsion(tc, 20, 1)
	if got.X >= 0 {
		t.Errorf("neighbor at +X must push toward -X, got %v", got)
	}
	if math.Abs(got.Y) > geometry.Epsilon {
		t.Errorf("expected purely horizontal repulsion, got %v", got)
	}
}

func TestRepulsion_MonotonicInDistance(t *testing.T) {
	self := body("self", 0, 0, 1, 0, true)
	mag := func(dist float64) float64 {
		tc := NewTickContext(self, []Body{body("n", dist, 0, 0, 0, true)}, 100, geometry.TwoPi)
		return Repulsion(tc, 20, 1).Len()
	}

	prev := math.Inf(1)
	for _, d := range []float64{1, 5, 10, 15, 19} {
		m := mag(d)
		if m >= prev {
			t.Errorf("repulsion at distance %v (= %v) should be weaker than at the previous distance (= %v)", d, m, prev)
		}
		prev = m
	}
	if m := mag(25); m != 0 {
		t.Errorf("neighbor beyond the comfort radius must not repel, got %v", m)
	}
}

func TestRepulsion_OppositeNeighborsCancel(t *testing.T) {
	// Two neighbors inside the comfort radius at bearings 0 and 180, equal
	// distance: the repulsion vectors cancel.
	self := body("self", 0, 0, 1, 0, true)
	bodies := []Body{
		body("east", 8, 0, 0, 0, true),
		body("west", -8, 0, 0, 0, true),
	}
	tc := NewTickContext(self, bodies, 100, geometry.TwoPi)

	got := Repulsion(tc, 20, 1)
	if got.Len() > geometry.Epsilon {
		t.Errorf("opposite equal-distance neighbors must cancel, got %v", got)
	}
}

func TestRepulsion_CoincidentNeighborIsFinite(t *testing.T) {
	self := body("self", 0, 0, 1, 0, true)
	twin := body("twin", 0, 0, 0, 0, true)
	tc := NewTickContext(self, []Body{twin}, 100, geometry.TwoPi)

	got := Repulsion(tc, 20, 1)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsInf(got.X, 0) || math.IsInf(got.Y, 0) {
		t.Errorf("coincident neighbor must not produce NaN/Inf, got %v", got)
	}
}

func TestCurrentForce_PositionOnly(t *testing.T) {
	center := geometry.Vector2D{X: 500, Y: 400}
	pos := geometry.Vector2D{X: 600, Y: 400}

	a := CurrentForce(pos, center)
	b := CurrentForce(pos, center)
	if !a.Eq(b) {
		t.Errorf("current force must be deterministic in position, got %v then %v", a, b)
	}

	// Unit magnitude and perpendicular to the radial direction.
	if math.Abs(a.Len()-1) > geometry.Epsilon {
		t.Errorf("current force should be unit length, got %v", a.Len())
	}
	radial := center.Sub(pos)
	if dot := a.Dot(radial); math.Abs(dot) > geometry.Epsilon {
		t.Errorf("current force should be tangential, dot with radial = %v", dot)
	}

	// Fixed rotation: perp(center-pos) of (-100, 0) is (0, -100) normalized.
	if !a.Eq(geometry.Vector2D{X: 0, Y: -1}) {
		t.Errorf("current at (600,400) around (500,400) = %v; want (0, -1)", a)
	}
}

func TestCurrentForce_AtCenter(t *testing.T) {
	center := geometry.Vector2D{X: 500, Y: 400}
	if got := CurrentForce(center, center); !got.Eq(geometry.Vector2D{}) {
		t.Errorf("current at the exact center must be zero, got %v", got)
	}
}

func TestBoundaryForce(t *testing.T) {
	const w, h, margin, base = 1000.0, 800.0, 100.0, 1.0

	t.Run("Interior is force free", func(t *testing.T) {
		got := BoundaryForce(geometry.Vector2D{X: 500, Y: 400}, w, h, margin, base)
		if !got.Eq(geometry.Vector2D{}) {
			t.Errorf("interior point should get zero force, got %v", got)
		}
	})

	t.Run("Pushes inward near each edge", func(t *testing.T) {
		if f := BoundaryForce(geometry.Vector2D{X: 20, Y: 400}, w, h, margin, base); f.X <= 0 {
			t.Errorf("left edge should push +X, got %v", f)
		}
		if f := BoundaryForce(geometry.Vector2D{X: 980, Y: 400}, w, h, margin, base); f.X >= 0 {
			t.Errorf("right edge should push -X, got %v", f)
		}
		if f := BoundaryForce(geometry.Vector2D{X: 500, Y: 20}, w, h, margin, base); f.Y <= 0 {
			t.Errorf("top edge should push +Y, got %v", f)
		}
		if f := BoundaryForce(geometry.Vector2D{X: 500, Y: 780}, w, h, margin, base); f.Y >= 0 {
			t.Errorf("bottom edge should push -Y, got %v", f)
		}
	})

	t.Run("Grows toward the edge", func(t *testing.T) {
		far := BoundaryForce(geometry.Vector2D{X: 90, Y: 400}, w, h, margin, base)
		near := BoundaryForce(geometry.Vector2D{X: 10, Y: 400}, w, h, margin, base)
		if near.X <= far.X {
			t.Errorf("force should grow approaching the edge: near %v vs far %v", near, far)
		}
	})

	t.Run("Corner pushes on both axes", func(t *testing.T) {
		f := BoundaryForce(geometry.Vector2D{X: 10, Y: 10}, w, h, margin, base)
		if f.X <= 0 || f.Y <= 0 {
			t.Errorf("corner should push inward on both axes, got %v", f)
		}
	})
}
