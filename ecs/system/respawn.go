package system

import (
	"log"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// RespawnSystem is the life manager. It collapses the frame's loss causes
// into at most one life loss, sweeps the arena, schedules the delayed
// respawn, and executes it with the gravity reset strictly before the
// replacement ball exists.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	lives, ok := ecs.Get(w, session, component.LivesComponent.Kind())
	if !ok {
		return
	}
	status, ok := ecs.Get(w, session, component.GameStatusComponent.Kind())
	if !ok {
		return
	}

	if fc, ok := ecs.Get(w, session, component.FrameContactsComponent.Kind()); ok && len(fc.Losses) > 0 {
		s.loseLife(w, session, fc.Losses[0], lives, status)
	}

	s.tick(w, session, status, dt)
}

// loseLife handles a loss frame. Simultaneous causes cost a single life; the
// first recorded cause names the loss.
func (s *RespawnSystem) loseLife(w *ecs.World, session ecs.Entity, cause component.LossCause, lives *component.Lives, status *component.GameStatus) {
	// the arena sweeps clean either way: every ball and hazard goes
	ecs.ForEach(w, component.BallComponent.Kind(), func(e ecs.Entity, _ *component.Ball) {
		w.DestroyEntity(e)
	})
	ecs.ForEach(w, component.HazardComponent.Kind(), func(e ecs.Entity, _ *component.Hazard) {
		w.DestroyEntity(e)
	})

	if status.Over {
		return
	}

	lives.Remaining--
	if lives.Remaining < 0 {
		lives.Remaining = 0
	}
	w.Events().Publish(ecs.Event{Type: ecs.EventLifeLost, Data: ecs.LifeLost{
		Cause:     cause,
		Remaining: lives.Remaining,
	}})

	// the paddle shrinks away during the delay; size powerups don't survive
	ecs.ForEach(w, component.PaddleComponent.Kind(), func(e ecs.Entity, paddle *component.Paddle) {
		_ = ecs.Remove(w, e, component.PaddleSizeEffectComponent.Kind())
		_ = ecs.Add(w, e, component.PaddleGrowingComponent.Kind(), &component.PaddleGrowing{
			From:     paddle.Scale,
			Target:   ShrinkScale,
			Duration: ShrinkDuration,
		})
		_ = ecs.Add(w, e, component.InputLockedComponent.Kind(), &component.InputLocked{})
	})

	if lives.Remaining == 0 {
		status.Over = true
		final := 0
		if score, ok := ecs.Get(w, session, component.ScoreComponent.Kind()); ok {
			final = score.Current
		}
		w.Events().Publish(ecs.Event{Type: ecs.EventGameOver, Data: ecs.GameOver{FinalScore: final}})
		log.Printf("Respawn: game over, score=%d", final)
		return
	}

	_ = ecs.Add(w, session, component.RespawnScheduleComponent.Kind(), &component.RespawnSchedule{
		Remaining: RespawnDelay,
		Pending:   true,
	})
}

func (s *RespawnSystem) tick(w *ecs.World, session ecs.Entity, status *component.GameStatus, dt float64) {
	schedule, ok := ecs.Get(w, session, component.RespawnScheduleComponent.Kind())
	if !ok || !schedule.Pending {
		return
	}
	schedule.Remaining -= dt
	if schedule.Remaining > 0 {
		return
	}
	schedule.Pending = false

	// a transition owns spawning now; the schedule dissolves into it
	if advance, ok := ecs.Get(w, session, component.LevelAdvanceComponent.Kind()); ok && advance.Active {
		return
	}
	if status.Over {
		return
	}

	// reset strictly before the replacement ball exists
	if cfg, ok := ecs.Get(w, session, component.GravityConfigComponent.Kind()); ok {
		cfg.ResetToDefault()
	}

	spawnPlayfield(w, session)
}
