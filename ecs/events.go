package ecs

import (
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// Event is a notification published by a system for same-frame consumers.
type Event struct {
	Type EventType
	Data any
}

// EventType names the notification kinds the core emits for collaborators
// (scoring, audio, UI) and for diagnostics.
type EventType string

const (
	EventBrickDestroyed   EventType = "brick_destroyed"
	EventGravityChanged   EventType = "gravity_changed"
	EventLifeLost         EventType = "life_lost"
	EventMilestoneReached EventType = "milestone_reached"
	EventGameOver         EventType = "game_over"
	EventLevelCompleted   EventType = "level_completed"
	EventLevelStarted     EventType = "level_started"
	EventUIBeep           EventType = "ui_beep"
)

// BrickDestroyed is published exactly once per brick destruction, whichever
// destruction path removed it. DestroyedBy is zero when no ball was involved.
type BrickDestroyed struct {
	Entity      Entity
	BrickType   levels.Tile
	DestroyedBy Entity
}

// GravityChanged mirrors an applied gravity update for diagnostic consumers;
// the application stage itself consumes request entities, not this event.
type GravityChanged struct {
	Gravity common.Vec3
}

// LifeLost is published once per life-loss frame.
type LifeLost struct {
	Cause     component.LossCause
	Remaining int
}

// MilestoneReached is published when the score crosses a 5000-point tier.
type MilestoneReached struct {
	Tier  int
	Total int
}

// GameOver is published when the last life is lost.
type GameOver struct {
	FinalScore int
}

// LevelCompleted is published when the last completion-counting brick falls.
type LevelCompleted struct {
	Number int
}

// LevelStarted is published when a transition hands control back to play.
type LevelStarted struct {
	Number int
}

// EventQueue is the per-frame notification buffer. Producers Publish;
// same-frame consumers read Pending without consuming, so several systems
// can react to one notification. The world clears the queue when the next
// frame begins.
type EventQueue struct {
	items []Event
}

// Publish appends a notification.
func (q *EventQueue) Publish(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the notifications published so far this frame, in order,
// without consuming them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all pending notifications and clears the queue. Only the
// session driver uses this, after systems have run.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
