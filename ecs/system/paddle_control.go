package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// PaddleSpeed is the paddle's horizontal speed at full deflection, world
// units per second.
const PaddleSpeed = 16.0

// PaddleControlSystem turns the session's movement intent into kinematic
// paddle velocity. A paddle under spawn choreography ignores input.
type PaddleControlSystem struct{}

func NewPaddleControlSystem() *PaddleControlSystem { return &PaddleControlSystem{} }

func (s *PaddleControlSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Physics() == nil {
		return
	}
	pw := w.Physics()

	dir := 0.0
	if session, ok := ecs.First(w, component.SessionComponent.Kind()); ok {
		if input, ok := ecs.Get(w, session, component.InputStateComponent.Kind()); ok {
			dir = input.MoveDir
		}
	}
	if dir > 1 {
		dir = 1
	} else if dir < -1 {
		dir = -1
	}

	ecs.ForEach(w, component.PaddleComponent.Kind(), func(e ecs.Entity, _ *component.Paddle) {
		if ecs.Has(w, e, component.InputLockedComponent.Kind()) {
			pw.SetVelocity(e, 0, 0)
			return
		}
		pw.SetVelocity(e, dir*PaddleSpeed, 0)
	})
}
