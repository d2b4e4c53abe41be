package ecs

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestPhysicsConfigValidate(t *testing.T) {
	mutate := func(fn func(*PhysicsConfig)) PhysicsConfig {
		cfg := DefaultPhysicsConfig()
		fn(&cfg)
		return cfg
	}

	cases := []struct {
		name    string
		cfg     PhysicsConfig
		wantErr string
	}{
		{
			name: "defaults_are_valid",
			cfg:  DefaultPhysicsConfig(),
		},
		{
			name:    "negative_restitution",
			cfg:     mutate(func(c *PhysicsConfig) { c.Ball.Restitution = -0.1 }),
			wantErr: "restitution",
		},
		{
			name:    "friction_above_bound",
			cfg:     mutate(func(c *PhysicsConfig) { c.Paddle.Friction = 2.5 }),
			wantErr: "friction",
		},
		{
			name:    "zero_mass",
			cfg:     mutate(func(c *PhysicsConfig) { c.Hazard.Mass = 0 }),
			wantErr: "mass",
		},
		{
			name:    "damping_above_bound",
			cfg:     mutate(func(c *PhysicsConfig) { c.Ball.Damping = 11 }),
			wantErr: "damping",
		},
		{
			name:    "non_positive_max_speed",
			cfg:     mutate(func(c *PhysicsConfig) { c.MaxBallSpeed = 0 }),
			wantErr: "max ball speed",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadPhysicsConfig(t *testing.T) {
	t.Run("reads_tuning", func(t *testing.T) {
		fsys := fstest.MapFS{
			"physics.yaml": &fstest.MapFile{Data: []byte(
				"ball:\n" +
					"  restitution: 0.8\n" +
					"  mass: 1.5\n" +
					"  friction: 0.2\n" +
					"  damping: 1.0\n" +
					"hazard:\n" +
					"  restitution: 1.0\n" +
					"  mass: 1.0\n" +
					"  friction: 0.0\n" +
					"  damping: 1.0\n" +
					"paddle:\n" +
					"  restitution: 0.6\n" +
					"  friction: 0.4\n" +
					"brick:\n" +
					"  restitution: 1.0\n" +
					"  friction: 1.0\n" +
					"max_ball_speed: 18\n",
			)},
		}
		cfg, err := LoadPhysicsConfig(fsys, "physics.yaml")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cfg.Ball.Restitution != 0.8 || cfg.Ball.Mass != 1.5 {
			t.Fatalf("ball tuning lost: %+v", cfg.Ball)
		}
		if cfg.Paddle.Restitution != 0.6 || cfg.MaxBallSpeed != 18 {
			t.Fatalf("tuning lost: paddle=%+v max=%v", cfg.Paddle, cfg.MaxBallSpeed)
		}
	})

	t.Run("rejects_out_of_bounds_tuning", func(t *testing.T) {
		fsys := fstest.MapFS{
			"physics.yaml": &fstest.MapFile{Data: []byte(
				"ball: {restitution: 9, mass: 1, friction: 0, damping: 1}\n" +
					"hazard: {restitution: 1, mass: 1, friction: 0, damping: 1}\n" +
					"paddle: {restitution: 0.7, friction: 0.5}\n" +
					"brick: {restitution: 1, friction: 1}\n" +
					"max_ball_speed: 20\n",
			)},
		}
		if _, err := LoadPhysicsConfig(fsys, "physics.yaml"); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("missing_file_errors", func(t *testing.T) {
		if _, err := LoadPhysicsConfig(fstest.MapFS{}, "physics.yaml"); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("bad_yaml_errors", func(t *testing.T) {
		fsys := fstest.MapFS{
			"physics.yaml": &fstest.MapFile{Data: []byte("ball: [\n")},
		}
		if _, err := LoadPhysicsConfig(fsys, "physics.yaml"); err == nil {
			t.Fatalf("expected error for malformed yaml")
		}
	})
}
