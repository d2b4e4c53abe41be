package system

import (
	"github.com/milk9111/brickbreaker/ecs"
)

// PhysicsSystem steps the space at the end of the frame, after every gravity
// and velocity write has landed.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Physics() == nil {
		return
	}
	w.Physics().Step(dt)
}
