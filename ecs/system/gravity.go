package system

import (
	"log"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// GravitySystem keeps the gravity store coherent and pushes the result to
// the physics layer before the step integrates it. The per-level initializer
// runs every frame; its level guard makes that a no-op except on the frame
// the level identity changes.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem { return &GravitySystem{} }

func (s *GravitySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	cfg, ok := ecs.Get(w, session, component.GravityConfigComponent.Kind())
	if !ok {
		return
	}

	if state, ok := ecs.Get(w, session, component.LevelStateComponent.Kind()); ok && state.Number != 0 {
		cfg.InitializeForLevel(state.Number, state.DefaultGravity)
	}

	// The request store empties every frame, so dense order is arrival
	// order; applying in order makes the last request of the frame win.
	for _, e := range ecs.Query(w, component.GravityChangeRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.GravityChangeRequestComponent.Kind())
		if !ok {
			w.DestroyEntity(e)
			continue
		}
		if !levels.ValidGravity(req.Gravity) {
			log.Printf("Gravity: rejecting change %+v", req.Gravity)
			w.DestroyEntity(e)
			continue
		}
		cfg.Apply(req.Gravity)
		w.Events().Publish(ecs.Event{Type: ecs.EventGravityChanged, Data: ecs.GravityChanged{Gravity: req.Gravity}})
		w.DestroyEntity(e)
	}

	if pw := w.Physics(); pw != nil {
		pw.SetBallGravity(cfg.Current)
	}
}
