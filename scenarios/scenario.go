// Package scenarios loads sandbox scenario files: the gravity vector and
// the automatic spawner settings. Scenarios are YAML files embedded in
// the binary, with same-named files on disk taking precedence so they
// can be edited (and hot-reloaded) while the sandbox runs.
package scenarios

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spawner modes.
const (
	ModeNone   = "none"   // click spawning only
	ModeRandom = "random" // interval spawner with random placement
	ModeScript = "script" // tengo script decides placement and velocity
)

// Scenario configures one sandbox run.
type Scenario struct {
	Name    string  `yaml:"name"`
	Gravity Gravity `yaml:"gravity"`
	Spawner Spawner `yaml:"spawner"`
}

// Gravity is the world's constant acceleration, in px/s^2. Positive Y
// points down.
type Gravity struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Spawner configures the automatic body spawner.
type Spawner struct {
	Mode      string  `yaml:"mode"`
	Interval  float64 `yaml:"interval"` // seconds between spawns
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxBodies int     `yaml:"max_bodies"`
	Script    string  `yaml:"script"` // script name under scripts/, script mode only
}

// Load reads and validates the named scenario, preferring a disk copy
// over the embedded one. The ".yaml" extension is optional.
func Load(name string) (*Scenario, error) {
	data, err := readScenario(name)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", name, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal scenario %s: %w", name, err)
	}
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", name, err)
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Spawner.Mode == "" {
		s.Spawner.Mode = ModeRandom
	}
	if s.Spawner.Interval == 0 {
		s.Spawner.Interval = 0.75
	}
	if s.Spawner.MinRadius == 0 {
		s.Spawner.MinRadius = 8
	}
	if s.Spawner.MaxRadius == 0 {
		s.Spawner.MaxRadius = 28
	}
	if s.Spawner.MaxBodies == 0 {
		s.Spawner.MaxBodies = 256
	}
}

func (s *Scenario) validate() error {
	switch s.Spawner.Mode {
	case ModeNone, ModeRandom, ModeScript:
	default:
		return fmt.Errorf("unknown spawner mode %q", s.Spawner.Mode)
	}
	if s.Spawner.Mode == ModeScript && s.Spawner.Script == "" {
		return fmt.Errorf("spawner mode %q requires a script", ModeScript)
	}
	if s.Spawner.Interval <= 0 {
		return fmt.Errorf("spawner interval must be positive, got %v", s.Spawner.Interval)
	}
	if s.Spawner.MinRadius <= 0 || s.Spawner.MaxRadius < s.Spawner.MinRadius {
		return fmt.Errorf("bad spawner radius range [%v, %v]", s.Spawner.MinRadius, s.Spawner.MaxRadius)
	}
	if s.Spawner.MaxBodies < 0 {
		return fmt.Errorf("max_bodies must not be negative, got %d", s.Spawner.MaxBodies)
	}
	return nil
}
