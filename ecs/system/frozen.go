package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// BallLaunchSpeed is the serve speed a released ball gets, aimed upward so
// play resumes even under a zero-gravity level default.
const BallLaunchSpeed = 12.0

// FrozenBallSystem pins frozen balls in place and performs the release. The
// release is two-step by construction: growth completion strips the paddle's
// lock, and this system, running earlier in the frame, only sees the strip
// on the following frame.
type FrozenBallSystem struct{}

func NewFrozenBallSystem() *FrozenBallSystem { return &FrozenBallSystem{} }

func (s *FrozenBallSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Physics() == nil {
		return
	}
	pw := w.Physics()

	hold := false
	paddleSeen := false
	ecs.ForEach(w, component.PaddleComponent.Kind(), func(e ecs.Entity, _ *component.Paddle) {
		paddleSeen = true
		if ecs.Has(w, e, component.PaddleGrowingComponent.Kind()) ||
			ecs.Has(w, e, component.InputLockedComponent.Kind()) {
			hold = true
		}
	})
	if !paddleSeen {
		// mid-choreography, no paddle yet: keep everything pinned
		hold = true
	}

	ecs.ForEach2(w, component.BallComponent.Kind(), component.BallFrozenComponent.Kind(),
		func(e ecs.Entity, _ *component.Ball, _ *component.BallFrozen) {
			pw.SetVelocity(e, 0, 0)
			if hold {
				return
			}
			_ = ecs.Remove(w, e, component.BallFrozenComponent.Kind())
			pw.SetFrozen(e, false)
			pw.Activate(e)
			pw.SetVelocity(e, 0, -BallLaunchSpeed)
		})
}
