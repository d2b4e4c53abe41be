package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// Spawn choreography tuning. The paddle grows in over GrowDuration and
// shrinks away over ShrinkDuration; the shrink matches the respawn delay so
// the replacement paddle appears the moment the old one is gone.
const (
	ShrinkScale    = 0.01
	GrowDuration   = 1.0
	RespawnDelay   = 1.0
	ShrinkDuration = RespawnDelay
)

// spawnPlayfield replaces the paddle and ball: a minimally-scaled paddle
// growing to full size with input locked, and a frozen ball pinned at its
// spawn point. Bricks are untouched.
func spawnPlayfield(w *ecs.World, session ecs.Entity) {
	pw := w.Physics()
	if pw == nil {
		return
	}

	points := defaultSpawnPoints()
	if sp, ok := ecs.Get(w, session, component.SpawnPointsComponent.Kind()); ok {
		points = *sp
	}

	ecs.ForEach(w, component.PaddleComponent.Kind(), func(e ecs.Entity, _ *component.Paddle) {
		w.DestroyEntity(e)
	})

	paddle := w.CreateEntity()
	_ = ecs.Add(w, paddle, component.PaddleComponent.Kind(), &component.Paddle{
		BaseWidth: ecs.PaddleBaseWidth,
		Scale:     ShrinkScale,
	})
	_ = ecs.Add(w, paddle, component.PaddleGrowingComponent.Kind(), &component.PaddleGrowing{
		From:     ShrinkScale,
		Target:   1,
		Duration: GrowDuration,
	})
	_ = ecs.Add(w, paddle, component.InputLockedComponent.Kind(), &component.InputLocked{})
	pw.AddPaddle(paddle, points.PaddleX, points.PaddleY, ecs.PaddleBaseWidth*ShrinkScale)

	ball := w.CreateEntity()
	_ = ecs.Add(w, ball, component.BallComponent.Kind(), &component.Ball{})
	_ = ecs.Add(w, ball, component.BallFrozenComponent.Kind(), &component.BallFrozen{})
	pw.AddBall(ball, points.BallX, points.BallY)
	pw.SetFrozen(ball, true)
}

func defaultSpawnPoints() component.SpawnPoints {
	spawns := (&levels.Definition{}).Spawns()
	return component.SpawnPoints{
		PaddleX: spawns.PaddleX,
		PaddleY: spawns.PaddleY,
		BallX:   spawns.BallX,
		BallY:   spawns.BallY,
	}
}
