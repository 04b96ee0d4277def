package steering

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
)

func testConfig() Config {
	return Config{
		ViewDistance:      100,
		FieldOfView:       270 * math.Pi / 180,
		MinGap:            27 * math.Pi / 180,
		GapProbeHalfAngle: 10 * math.Pi / 180,
		GapSearchRadius:   100,
		ComfortRadius:     20,
		RepulsionForce:    1,
		WorldWidth:        1000,
		WorldHeight:       800,
		BoundaryMargin:    100,
		BoundaryForce:     1,
		CurrentCenter:     geometry.Vector2D{X: 500, Y: 400},
		CurrentStrength:   1,
		MinSpeed:          2,
		MaxSpeed:          4,
		Weights:           Weights{Gap: 1, Repulsion: 1, Current: 1, Boundary: 1},
	}
}

func TestCompose_NoNeighborsInInterior(t *testing.T) {
	// Alone in the interior only the ambient current acts.
	cfg := testConfig()
	self := body("self", 600, 400, 0, 1, true)
	tc := NewTickContext(self, []Body{self}, cfg.ViewDistance, cfg.FieldOfView)

	got := Compose(tc, cfg)
	want := CurrentForce(self.Pos, cfg.CurrentCenter)
	if !got.Eq(want) {
		t.Errorf("net force = %v; want pure current %v", got, want)
	}
}

func TestCompose_WeightsScaleTerms(t *testing.T) {
	cfg := testConfig()
	cfg.Weights = Weights{Current: 3} // everything else zeroed
	self := body("self", 600, 400, 0, 1, true)
	tc := NewTickContext(self, []Body{self}, cfg.ViewDistance, cfg.FieldOfView)

	got := Compose(tc, cfg)
	want := CurrentForce(self.Pos, cfg.CurrentCenter).Mul(3)
	if !got.Eq(want) {
		t.Errorf("net force = %v; want weighted current %v", got, want)
	}
}

func TestCompose_RejectsNonFiniteTerm(t *testing.T) {
	// A corrupted term must be clamped to zero, never propagated.
	cfg := testConfig()
	cfg.CurrentStrength = math.NaN()
	cfg.Weights = Weights{Current: 1}
	self := body("self", 600, 400, 0, 1, true)
	tc := NewTickContext(self, []Body{self}, cfg.ViewDistance, cfg.FieldOfView)

	got := Compose(tc, cfg)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("NaN leaked through the composer: %v", got)
	}
	if !got.Eq(geometry.Vector2D{}) {
		t.Errorf("corrupted current term should contribute zero, got %v", got)
	}
}

func TestCompose_GapAndRepulsionUseTheSameSnapshot(t *testing.T) {
	// One close neighbor ahead: repulsion pushes back, the wraparound gap
	// points back as well. Both consume the cached neighbor list in tc.
	cfg := testConfig()
	cfg.Weights = Weights{Gap: 1, Repulsion: 1}
	self := body("self", 500, 400, 1, 0, true)
	near := body("near", 510, 400, 0, 0, true)
	tc := NewTickContext(self, []Body{self, near}, cfg.ViewDistance, cfg.FieldOfView)

	got := Compose(tc, cfg)
	if got.X >= 0 {
		t.Errorf("both terms should point away from the neighbor (-X), got %v", got)
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name     string
		vel      geometry.Vector2D
		wantLen  float64
		preserve bool // direction preserved
	}{
		{"Above max", geometry.Vector2D{X: 10, Y: 0}, 4, true},
		{"Below min", geometry.Vector2D{X: 0.5, Y: 0}, 2, true},
		{"Inside envelope", geometry.Vector2D{X: 0, Y: 3}, 3, true},
		{"At max", geometry.Vector2D{X: 4, Y: 0}, 4, true},
		{"Zero velocity", geometry.Vector2D{}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampSpeed(tt.vel, 2, 4)
			if math.Abs(got.Len()-tt.wantLen) > 1e-9 {
				t.Errorf("speed = %v; want %v", got.Len(), tt.wantLen)
			}
			if tt.preserve {
				dir := tt.vel.Normalize()
				if math.Abs(dir.Cross(got.Normalize())) > geometry.Epsilon || dir.Dot(got) < 0 {
					t.Errorf("direction changed: %v -> %v", tt.vel, got)
				}
			}
		})
	}
}

func TestClampSpeed_EnvelopeProperty(t *testing.T) {
	// Any starting velocity, including zero, ends inside [min, max].
	starts := []geometry.Vector2D{
		{}, {X: 0.001}, {X: -50, Y: 12}, {Y: 3}, {X: 2.5, Y: 2.5}, {X: -0.3, Y: 0.1},
	}
	for _, v := range starts {
		got := ClampSpeed(v, 2, 4)
		s := got.Len()
		if s < 2-1e-9 || s > 4+1e-9 {
			t.Errorf("ClampSpeed(%v) speed %v outside [2, 4]", v, s)
		}
	}
}
