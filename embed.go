package brickbreaker

import (
	"embed"

	"github.com/milk9111/brickbreaker/ecs"
)

//go:embed config/physics.yaml
var configFS embed.FS

// EmbeddedPhysicsConfig loads the physics tuning the binary ships with.
func EmbeddedPhysicsConfig() (ecs.PhysicsConfig, error) {
	return ecs.LoadPhysicsConfig(configFS, "config/physics.yaml")
}
