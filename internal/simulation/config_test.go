package simulation

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_SteeringConfig(t *testing.T) {
	cfg := DefaultConfig()
	scfg := cfg.SteeringConfig()

	wantFov := 270 * math.Pi / 180
	if math.Abs(scfg.FieldOfView-wantFov) > 1e-9 {
		t.Errorf("FieldOfView = %v; want %v", scfg.FieldOfView, wantFov)
	}
	if math.Abs(scfg.MinGap-0.1*wantFov) > 1e-9 {
		t.Errorf("MinGap = %v; want %v", scfg.MinGap, 0.1*wantFov)
	}
	wantProbe := 10 * math.Pi / 180
	if math.Abs(scfg.GapProbeHalfAngle-wantProbe) > 1e-9 {
		t.Errorf("GapProbeHalfAngle = %v; want %v", scfg.GapProbeHalfAngle, wantProbe)
	}
	if scfg.CurrentCenter.X != 500 || scfg.CurrentCenter.Y != 400 {
		t.Errorf("CurrentCenter = %v; want pond center (500, 400)", scfg.CurrentCenter)
	}
	if scfg.MinSpeed != cfg.MinSpeed || scfg.MaxSpeed != cfg.MaxSpeed {
		t.Errorf("Speed envelope not carried over: [%v, %v]", scfg.MinSpeed, scfg.MaxSpeed)
	}
}

const testSchema = `{
  "type": "object",
  "properties": {
    "worldWidth": { "type": "number", "exclusiveMinimum": 0 },
    "worldHeight": { "type": "number", "exclusiveMinimum": 0 },
    "numAgents": { "type": "integer", "minimum": 1 },
    "viewDistance": { "type": "number", "exclusiveMinimum": 0 },
    "minSpeed": { "type": "number", "minimum": 0 },
    "maxSpeed": { "type": "number", "exclusiveMinimum": 0 }
  },
  "required": ["worldWidth", "worldHeight", "numAgents", "viewDistance"]
}`

func writeTempFiles(t *testing.T, configJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.json")
	schemaFile := filepath.Join(dir, "config.schema.json")
	if err := os.WriteFile(configFile, []byte(configJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(schemaFile, []byte(testSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	return configFile, schemaFile
}

func TestLoadConfig_Valid(t *testing.T) {
	configFile, schemaFile := writeTempFiles(t, `{
		"worldWidth": 640,
		"worldHeight": 480,
		"numAgents": 50,
		"viewDistance": 80,
		"minSpeed": 1,
		"maxSpeed": 3
	}`)

	cfg, err := LoadConfig(configFile, schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.WorldWidth != 640 || cfg.WorldHeight != 480 {
		t.Errorf("World size = %v x %v", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.NumAgents != 50 {
		t.Errorf("NumAgents = %d", cfg.NumAgents)
	}
	if cfg.ViewDistance != 80 {
		t.Errorf("ViewDistance = %v", cfg.ViewDistance)
	}
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	// viewDistance has the wrong type; the schema must reject it.
	configFile, schemaFile := writeTempFiles(t, `{
		"worldWidth": 640,
		"worldHeight": 480,
		"numAgents": 50,
		"viewDistance": "far"
	}`)

	if _, err := LoadConfig(configFile, schemaFile); err == nil {
		t.Fatal("Expected a validation error for a string viewDistance")
	}
}

func TestLoadConfig_MissingRequiredField(t *testing.T) {
	configFile, schemaFile := writeTempFiles(t, `{
		"worldWidth": 640,
		"worldHeight": 480,
		"numAgents": 50
	}`)

	if _, err := LoadConfig(configFile, schemaFile); err == nil {
		t.Fatal("Expected a validation error for a missing viewDistance")
	}
}

func TestLoadConfig_InvertedSpeedEnvelope(t *testing.T) {
	configFile, schemaFile := writeTempFiles(t, `{
		"worldWidth": 640,
		"worldHeight": 480,
		"numAgents": 50,
		"viewDistance": 80,
		"minSpeed": 5,
		"maxSpeed": 3
	}`)

	if _, err := LoadConfig(configFile, schemaFile); err == nil {
		t.Fatal("Expected an error for minSpeed > maxSpeed")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, schemaFile := writeTempFiles(t, `{}`)
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), schemaFile); err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
}
