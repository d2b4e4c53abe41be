package system

import (
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

// MilestoneStep is the score interval that grants a bonus life.
const MilestoneStep = 5000

// ScoringSystem credits the frame's brick destructions and hands out
// milestone lives. It reads the same-frame BrickDestroyed notifications
// without consuming them, so audio or UI consumers still see every one.
type ScoringSystem struct{}

func NewScoringSystem() *ScoringSystem { return &ScoringSystem{} }

func (s *ScoringSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	score, ok := ecs.Get(w, session, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	gained := 0
	for _, evt := range w.Events().Pending() {
		if evt.Type != ecs.EventBrickDestroyed {
			continue
		}
		destroyed, ok := evt.Data.(ecs.BrickDestroyed)
		if !ok {
			continue
		}
		gained += destroyed.BrickType.Points()
	}
	if gained == 0 {
		return
	}
	score.Current += gained

	// one big frame can cross several tiers; each grants its own life
	lives, _ := ecs.Get(w, session, component.LivesComponent.Kind())
	tier := score.Current / MilestoneStep
	for score.LastMilestone < tier {
		score.LastMilestone++
		w.Events().Publish(ecs.Event{Type: ecs.EventMilestoneReached, Data: ecs.MilestoneReached{
			Tier:  score.LastMilestone,
			Total: score.Current,
		}})
		if lives != nil && lives.Remaining < lives.Max {
			lives.Remaining++
		}
	}
}
