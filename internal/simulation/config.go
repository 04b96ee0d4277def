package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/steering"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config holds every scalar of a run. Angles are stored in degrees here
// because that is what humans write in config.json; SteeringConfig converts.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumAgents        int `json:"numAgents"`
	NumActiveAtStart int `json:"numActiveAtStart"`

	// Perception
	ViewDistance float64 `json:"viewDistance"`
	FieldOfView  float64 `json:"fieldOfView"` // full cone, degrees

	// Gap steering
	MinGapFraction    float64 `json:"minGapFraction"` // of the field of view
	GapSearchRadius   float64 `json:"gapSearchRadius"`
	GapProbeHalfAngle float64 `json:"gapProbeHalfAngle"` // degrees

	// Personal space
	ComfortRadius  float64 `json:"comfortRadius"`
	RepulsionForce float64 `json:"repulsionForce"`

	// World forces
	BoundaryMargin  float64 `json:"boundaryMargin"`
	BoundaryForce   float64 `json:"boundaryForce"`
	CurrentStrength float64 `json:"currentStrength"`

	// Speed envelope
	MinSpeed float64 `json:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`

	// Per-term force weights
	GapWeight       float64 `json:"gapWeight"`
	RepulsionWeight float64 `json:"repulsionWeight"`
	CurrentWeight   float64 `json:"currentWeight"`
	BoundaryWeight  float64 `json:"boundaryWeight"`

	// Activation scheduler
	AwakenIntervalMs int `json:"awakenIntervalMs"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:        1000,
		WorldHeight:       800,
		NumAgents:         120,
		NumActiveAtStart:  3,
		ViewDistance:      100,
		FieldOfView:       270,
		MinGapFraction:    0.1,
		GapSearchRadius:   100,
		GapProbeHalfAngle: 10,
		ComfortRadius:     20,
		RepulsionForce:    0.4,
		BoundaryMargin:    100,
		BoundaryForce:     0.6,
		CurrentStrength:   0.15,
		MinSpeed:          2.0,
		MaxSpeed:          4.0,
		GapWeight:         1.0,
		RepulsionWeight:   1.0,
		CurrentWeight:     1.0,
		BoundaryWeight:    1.0,
		AwakenIntervalMs:  500,
	}
}

// Center is the pond center, also the hub of the ambient current.
func (c *Config) Center() geometry.Vector2D {
	return geometry.Vector2D{X: c.WorldWidth / 2, Y: c.WorldHeight / 2}
}

// SteeringConfig translates the run configuration into the force model's
// parameters: degrees become radians and the minimum gap threshold is derived
// from the field of view.
func (c *Config) SteeringConfig() steering.Config {
	fov := c.FieldOfView * math.Pi / 180
	return steering.Config{
		ViewDistance:      c.ViewDistance,
		FieldOfView:       fov,
		MinGap:            c.MinGapFraction * fov,
		GapProbeHalfAngle: c.GapProbeHalfAngle * math.Pi / 180,
		GapSearchRadius:   c.GapSearchRadius,
		ComfortRadius:     c.ComfortRadius,
		RepulsionForce:    c.RepulsionForce,
		WorldWidth:        c.WorldWidth,
		WorldHeight:       c.WorldHeight,
		BoundaryMargin:    c.BoundaryMargin,
		BoundaryForce:     c.BoundaryForce,
		CurrentCenter:     c.Center(),
		CurrentStrength:   c.CurrentStrength,
		MinSpeed:          c.MinSpeed,
		MaxSpeed:          c.MaxSpeed,
		Weights: steering.Weights{
			Gap:       c.GapWeight,
			Repulsion: c.RepulsionWeight,
			Current:   c.CurrentWeight,
			Boundary:  c.BoundaryWeight,
		},
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.MinSpeed > cfg.MaxSpeed {
		return nil, fmt.Errorf("invalid speed envelope: minSpeed %.2f > maxSpeed %.2f", cfg.MinSpeed, cfg.MaxSpeed)
	}
	if cfg.NumActiveAtStart > cfg.NumAgents {
		return nil, fmt.Errorf("numActiveAtStart %d exceeds numAgents %d", cfg.NumActiveAtStart, cfg.NumAgents)
	}

	return &cfg, nil
}
