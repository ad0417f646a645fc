package flock

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{
		"worldWidth": 800,
		"worldHeight": 600,
		"numBoids": 120,
		"viewRadius": 75,
		"separationWeight": 1.5,
		"seed": 7
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WorldWidth != 800 || cfg.NumBoids != 120 || cfg.SeparationWeight != 1.5 {
		t.Errorf("loaded values not applied: %+v", cfg)
	}
	// Unset fields fall back to defaults.
	if cfg.SmoothingAlpha != DefaultConfig().SmoothingAlpha {
		t.Errorf("SmoothingAlpha = %v; want default %v", cfg.SmoothingAlpha, DefaultConfig().SmoothingAlpha)
	}
}

func TestLoadConfig_SchemaRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Zero population", `{"numBoids": 0}`},
		{"Negative view radius", `{"viewRadius": -5}`},
		{"Alpha above one", `{"smoothingAlpha": 1.5}`},
		{"Unknown field", `{"maxSpede": 4}`},
		{"Wrong type", `{"numBoids": "thirty"}`},
		{"Not JSON", `numBoids = 30`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig accepted invalid config %q", tt.content)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadConfig of missing file succeeded")
	}
}
