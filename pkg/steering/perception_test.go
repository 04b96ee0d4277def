package steering

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
)

func body(id string, x, y, vx, vy float64, active bool) Body {
	return Body{
		ID:     id,
		Pos:    geometry.Vector2D{X: x, Y: y},
		Vel:    geometry.Vector2D{X: vx, Y: vy},
		Active: active,
	}
}

func TestVisibleNeighbors_RangeAndCone(t *testing.T) {
	// Observer at origin looking along +X with a 90 degree cone and a view
	// distance of 100.
	self := body("self", 0, 0, 1, 0, true)
	fov := math.Pi / 2

	bodies := []Body{
		self,
		body("ahead", 50, 0, 0, 0, true),
		body("edge-of-cone", 50, 50, 0, 0, true), // exactly 45 degrees off heading
		body("behind", -50, 0, 0, 0, true),
		body("too-far", 99, 99, 0, 0, true), // inside cone, dist ~140
		body("side", 0, 30, 0, 0, true),     // 90 degrees off heading
	}

	ns := VisibleNeighbors(self, bodies, 100, fov)

	got := map[string]bool{}
	for _, n := range ns {
		got[n.Body.ID] = true
	}

	if !got["ahead"] {
		t.Error("expected 'ahead' to be visible")
	}
	if !got["edge-of-cone"] {
		t.Error("expected 'edge-of-cone' (angle == fov/2) to be visible")
	}
	if got["behind"] {
		t.Error("'behind' is outside the cone, must not be visible")
	}
	if got["too-far"] {
		t.Error("'too-far' is beyond view distance, must not be visible")
	}
	if got["side"] {
		t.Error("'side' at 90 degrees exceeds the 45 degree half cone")
	}
	if got["self"] {
		t.Error("the observer must never see itself")
	}
}

func TestVisibleNeighbors_NearestFirstAndTieBreak(t *testing.T) {
	self := body("self", 0, 0, 1, 0, true)
	bodies := []Body{
		body("far", 80, 0, 0, 0, true),
		body("b-tied", 0.001, 40, 0, 0, true),
		body("near", 10, 0, 0, 0, true),
		body("a-tied", 0.001, -40, 0, 0, true), // same distance as b-tied
	}

	ns := VisibleNeighbors(self, bodies, 100, geometry.TwoPi)

	want := []string{"near", "a-tied", "b-tied", "far"}
	if len(ns) != len(want) {
		t.Fatalf("expected %d neighbors, got %d", len(want), len(ns))
	}
	for i, id := range want {
		if ns[i].Body.ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, ns[i].Body.ID)
		}
	}
	for i := 1; i < len(ns); i++ {
		if ns[i].Dist < ns[i-1].Dist {
			t.Errorf("neighbors not sorted nearest-first at index %d", i)
		}
	}
}

func TestVisibleNeighbors_DormantBodiesAreObstacles(t *testing.T) {
	// Dormant agents stay visible to active observers: they occlude and repel
	// even though they are never steered themselves.
	self := body("self", 0, 0, 1, 0, true)
	sleeper := body("sleeper", 20, 0, 0, 0, false)

	ns := VisibleNeighbors(self, []Body{self, sleeper}, 100, math.Pi)
	if len(ns) != 1 || ns[0].Body.ID != "sleeper" {
		t.Fatalf("dormant body should be visible, got %v", ns)
	}
}

func TestVisibleNeighbors_BearingNormalized(t *testing.T) {
	self := body("self", 0, 0, 1, 0, true)
	below := body("below", 0, -30, 0, 0, true) // Atan2 would give -Pi/2

	ns := VisibleNeighbors(self, []Body{below}, 100, geometry.TwoPi)
	if len(ns) != 1 {
		t.Fatalf("expected one neighbor, got %d", len(ns))
	}
	want := 3 * math.Pi / 2
	if math.Abs(ns[0].Bearing-want) > 1e-9 {
		t.Errorf("bearing = %v; want %v (wrapped into [0, 2Pi))", ns[0].Bearing, want)
	}
}

func TestHeading_ZeroVelocity(t *testing.T) {
	b := body("still", 5, 5, 0, 0, true)
	if h := b.Heading(); h != 0 {
		t.Errorf("zero-velocity heading = %v; want 0 (+X convention)", h)
	}
}
