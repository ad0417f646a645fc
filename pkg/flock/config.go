package flock

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema string

// Config holds every knob the simulation core exposes. It is supplied at
// world construction; the interactive UI may push updated rule parameters
// between frames via World.Tune.
type Config struct {
	// World dimensions in pixels.
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population, fixed for a run.
	NumBoids int `json:"numBoids"`

	// ViewRadius is the neighbor cutoff distance: another boid is a
	// neighbor when its squared distance is strictly below ViewRadius².
	ViewRadius float64 `json:"viewRadius"`

	// MaxSpeed is the cruise speed in pixels per frame. Every committed
	// velocity has exactly this magnitude.
	MaxSpeed float64 `json:"maxSpeed"`

	// Rule weights. Real-valued, not required to sum to 1.
	AlignWeight      float64 `json:"alignWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`
	SeparationWeight float64 `json:"separationWeight"`

	// SmoothingAlpha in [0,1] blends the new steering vector with the
	// previous frame's velocity. Higher favors responsiveness, lower
	// favors momentum.
	SmoothingAlpha float64 `json:"smoothingAlpha"`

	// JitterBound caps the per-axis magnitude of the per-frame random
	// steering jitter.
	JitterBound float64 `json:"jitterBound"`

	// Sprite extents keep the drawn arrow fully on screen when a boid
	// rides the boundary.
	SpriteWidth  float64 `json:"spriteWidth"`
	SpriteHeight float64 `json:"spriteHeight"`

	// Parallel enables the chunked read-phase worker fan-out for large
	// populations. Results are identical either way.
	Parallel bool `json:"parallel"`

	// Seed for the simulation's random source. Identical seeds give
	// identical runs.
	Seed uint64 `json:"seed"`
}

// DefaultConfig mirrors the classic demo parameters.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       1024,
		WorldHeight:      576,
		NumBoids:         30,
		ViewRadius:       100,
		MaxSpeed:         10,
		AlignWeight:      0.4,
		CohesionWeight:   0.4,
		SeparationWeight: 0.2,
		SmoothingAlpha:   0.35,
		JitterBound:      0.1,
		SpriteWidth:      10,
		SpriteHeight:     15,
		Parallel:         false,
		Seed:             42,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the embedded schema before unmarshalling.
func LoadConfig(configFile string) (*Config, error) {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
