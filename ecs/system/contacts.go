package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// ContactSystem converts the previous step's collision facts into domain
// effects: multi-hit decay, ball-kill records for the destruction pipeline,
// loss causes for the life manager, and the paddle-side brick rules. The
// digest it builds replaces the session's FrameContacts wholesale, so stale
// contacts never leak across frames.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem { return &ContactSystem{} }

func (s *ContactSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Physics() == nil {
		return
	}
	pw := w.Physics()
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}

	contacts := pw.Harvest()
	fc := &component.FrameContacts{}

	for _, hit := range contacts.BrickHits {
		brick, ok := ecs.Get(w, hit.Brick, component.BrickComponent.Kind())
		if !ok {
			continue
		}
		switch t := brick.Type; {
		case t.IsMultiHit():
			// decay is silent: no notification until the final form falls
			if next, ok := t.Decay(); ok {
				brick.Type = next
			}
		case t.BallDestroys():
			fc.BallKills = append(fc.BallKills, component.BallKill{
				Brick: uint64(hit.Brick),
				Ball:  uint64(hit.Ball),
			})
		}
	}

	for _, ball := range contacts.GoalBalls {
		if w.IsAlive(ball) {
			fc.Losses = append(fc.Losses, component.LossLowerGoal)
		}
	}
	for _, hazard := range contacts.PaddleHazards {
		if w.IsAlive(hazard) {
			fc.Losses = append(fc.Losses, component.LossHazardContact)
		}
	}
	for _, hazard := range contacts.GoalHazards {
		// hazards drain out of the arena without costing anything
		w.DestroyEntity(hazard)
	}

	s.paddleBrickRules(w, fc)

	_ = ecs.Add(w, session, component.FrameContactsComponent.Kind(), fc)
}

// paddleBrickRules applies the overlap rules the solver never sees: the
// kinematic paddle against static bricks. Touching a hazard brick costs a
// life; touching a paddle-destroyable brick marks it for despawn. A paddle
// under spawn choreography is exempt.
func (s *ContactSystem) paddleBrickRules(w *ecs.World, fc *component.FrameContacts) {
	pw := w.Physics()
	paddle, ok := ecs.First(w, component.PaddleComponent.Kind())
	if !ok || ecs.Has(w, paddle, component.InputLockedComponent.Kind()) {
		return
	}
	for _, e := range pw.PaddleOverlaps(paddle) {
		brick, ok := ecs.Get(w, e, component.BrickComponent.Kind())
		if !ok {
			continue
		}
		switch {
		case brick.Type.IsHazardBrick():
			fc.Losses = append(fc.Losses, component.LossHazardBrick)
		case brick.Type == levels.TilePaddleDestroyable:
			_ = ecs.Add(w, e, component.MarkedForDespawnComponent.Kind(), &component.MarkedForDespawn{
				DestroyedBy: uint64(paddle),
			})
		}
	}
}
