package system

import (
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// GrowthSystem eases paddle scale animations and rebuilds the physics shape
// as the scale moves. Completion strips the animation and the input lock;
// the frozen-ball release notices the strip on the next frame.
type GrowthSystem struct{}

func NewGrowthSystem() *GrowthSystem { return &GrowthSystem{} }

func (s *GrowthSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Physics() == nil {
		return
	}
	pw := w.Physics()

	ecs.ForEach2(w, component.PaddleComponent.Kind(), component.PaddleGrowingComponent.Kind(),
		func(e ecs.Entity, paddle *component.Paddle, growing *component.PaddleGrowing) {
			growing.Elapsed += dt

			paddle.Scale = common.Lerp(growing.From, growing.Target, growing.Progress())
			pw.ResizePaddle(e, paddle.BaseWidth*paddle.Scale)

			if growing.Elapsed < growing.Duration {
				return
			}
			paddle.Scale = growing.Target
			pw.ResizePaddle(e, paddle.BaseWidth*growing.Target)
			_ = ecs.Remove(w, e, component.PaddleGrowingComponent.Kind())
			_ = ecs.Remove(w, e, component.InputLockedComponent.Kind())
		})
}
