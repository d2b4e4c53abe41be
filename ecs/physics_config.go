package ecs

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// BodyTuning parameterizes one dynamic body archetype. Damping is velocity
// retention per second; 1 keeps speed, below 1 bleeds it off.
type BodyTuning struct {
	Restitution float64 `yaml:"restitution"`
	Mass        float64 `yaml:"mass"`
	Friction    float64 `yaml:"friction"`
	Damping     float64 `yaml:"damping"`
}

// SurfaceTuning parameterizes a body that only bounces others.
type SurfaceTuning struct {
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
}

// PhysicsConfig tunes the arena's body archetypes.
type PhysicsConfig struct {
	Ball         BodyTuning    `yaml:"ball"`
	Hazard       BodyTuning    `yaml:"hazard"`
	Paddle       SurfaceTuning `yaml:"paddle"`
	Brick        SurfaceTuning `yaml:"brick"`
	MaxBallSpeed float64       `yaml:"max_ball_speed"`
}

// DefaultPhysicsConfig is the tuning the game ships with.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Ball:         BodyTuning{Restitution: 0.9, Mass: 2.0, Friction: 0.5, Damping: 1.0},
		Hazard:       BodyTuning{Restitution: 1.0, Mass: 1.0, Friction: 0, Damping: 1.0},
		Paddle:       SurfaceTuning{Restitution: 0.7, Friction: 0.5},
		Brick:        SurfaceTuning{Restitution: 1.0, Friction: 1.0},
		MaxBallSpeed: 20,
	}
}

// Validate bounds-checks the tuning.
func (c PhysicsConfig) Validate() error {
	surfaces := []struct {
		name        string
		restitution float64
		friction    float64
	}{
		{"ball", c.Ball.Restitution, c.Ball.Friction},
		{"hazard", c.Hazard.Restitution, c.Hazard.Friction},
		{"paddle", c.Paddle.Restitution, c.Paddle.Friction},
		{"brick", c.Brick.Restitution, c.Brick.Friction},
	}
	for _, s := range surfaces {
		if s.restitution < 0 || s.restitution > 2 {
			return fmt.Errorf("physics: %s restitution %v outside [0, 2]", s.name, s.restitution)
		}
		if s.friction < 0 || s.friction > 2 {
			return fmt.Errorf("physics: %s friction %v outside [0, 2]", s.name, s.friction)
		}
	}
	bodies := []struct {
		name string
		t    BodyTuning
	}{
		{"ball", c.Ball},
		{"hazard", c.Hazard},
	}
	for _, b := range bodies {
		if b.t.Mass <= 0 {
			return fmt.Errorf("physics: %s mass %v must be positive", b.name, b.t.Mass)
		}
		if b.t.Damping < 0 || b.t.Damping > 10 {
			return fmt.Errorf("physics: %s damping %v outside [0, 10]", b.name, b.t.Damping)
		}
	}
	if c.MaxBallSpeed <= 0 {
		return fmt.Errorf("physics: max ball speed %v must be positive", c.MaxBallSpeed)
	}
	return nil
}

// LoadPhysicsConfig reads and validates a tuning file.
func LoadPhysicsConfig(fsys fs.FS, name string) (PhysicsConfig, error) {
	var cfg PhysicsConfig
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("physics: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("physics: unmarshal %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
