package system

import (
	"log"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// CheatSystem applies the frame's cheat input: mode toggles, gated level
// switching, and gated restarts. Requests arriving with cheat mode off beep
// instead of acting. Toggling in either direction forfeits the score.
type CheatSystem struct {
	catalog *levels.Catalog
}

func NewCheatSystem(catalog *levels.Catalog) *CheatSystem {
	return &CheatSystem{catalog: catalog}
}

// SetCatalog swaps the level set after a live reload.
func (s *CheatSystem) SetCatalog(catalog *levels.Catalog) {
	if s == nil {
		return
	}
	s.catalog = catalog
}

func (s *CheatSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	cheat, ok := ecs.Get(w, session, component.CheatModeComponent.Kind())
	if !ok {
		return
	}

	if ecs.Has(w, session, component.CheatToggleRequestComponent.Kind()) {
		_ = ecs.Remove(w, session, component.CheatToggleRequestComponent.Kind())
		s.toggle(w, session, cheat)
	}
	if intent, ok := ecs.Get(w, session, component.LevelSwitchIntentComponent.Kind()); ok {
		resolved := *intent
		_ = ecs.Remove(w, session, component.LevelSwitchIntentComponent.Kind())
		s.switchLevel(w, session, cheat, resolved)
	}
	if ecs.Has(w, session, component.RestartRequestComponent.Kind()) {
		_ = ecs.Remove(w, session, component.RestartRequestComponent.Kind())
		s.restart(w, session, cheat)
	}
}

func (s *CheatSystem) toggle(w *ecs.World, session ecs.Entity, cheat *component.CheatMode) {
	cheat.Active = !cheat.Active

	// entering and leaving both forfeit the score
	if score, ok := ecs.Get(w, session, component.ScoreComponent.Kind()); ok {
		score.Current = 0
		score.LastMilestone = 0
	}
	if !cheat.Active {
		log.Printf("Cheat: disabled")
		return
	}

	wasOver := false
	if status, ok := ecs.Get(w, session, component.GameStatusComponent.Kind()); ok {
		wasOver = status.Over
		status.Over = false
	}
	if lives, ok := ecs.Get(w, session, component.LivesComponent.Kind()); ok {
		lives.Remaining = component.StartingLives
	}
	if wasOver {
		// the arena has no ball after a game over; owe one immediately
		_ = ecs.Add(w, session, component.RespawnScheduleComponent.Kind(), &component.RespawnSchedule{Pending: true})
	}
	log.Printf("Cheat: enabled")
}

func (s *CheatSystem) switchLevel(w *ecs.World, session ecs.Entity, cheat *component.CheatMode, intent component.LevelSwitchIntent) {
	if !cheat.Active {
		w.Events().Publish(ecs.Event{Type: ecs.EventUIBeep})
		return
	}
	if s.catalog == nil {
		return
	}
	state, ok := ecs.Get(w, session, component.LevelStateComponent.Kind())
	if !ok {
		return
	}

	var def *levels.Definition
	switch {
	case intent.Absolute:
		d, found := s.catalog.ByNumber(intent.Target)
		if !found {
			log.Printf("Cheat: no level %d", intent.Target)
			return
		}
		def = d
	case intent.Delta < 0:
		def = s.catalog.Prev(state.Number)
	default:
		def = s.catalog.Next(state.Number)
	}
	if def == nil {
		return
	}

	req := w.CreateEntity()
	_ = ecs.Add(w, req, component.LevelSwitchRequestComponent.Kind(), &component.LevelSwitchRequest{Number: def.Number})
}

func (s *CheatSystem) restart(w *ecs.World, session ecs.Entity, cheat *component.CheatMode) {
	if !cheat.Active {
		w.Events().Publish(ecs.Event{Type: ecs.EventUIBeep})
		return
	}
	if lives, ok := ecs.Get(w, session, component.LivesComponent.Kind()); ok {
		lives.Remaining = component.StartingLives
	}
	if score, ok := ecs.Get(w, session, component.ScoreComponent.Kind()); ok {
		score.Current = 0
		score.LastMilestone = 0
	}
	if status, ok := ecs.Get(w, session, component.GameStatusComponent.Kind()); ok {
		status.Over = false
	}
	state, ok := ecs.Get(w, session, component.LevelStateComponent.Kind())
	if !ok {
		return
	}

	req := w.CreateEntity()
	_ = ecs.Add(w, req, component.LevelSwitchRequestComponent.Kind(), &component.LevelSwitchRequest{Number: state.Number})
	log.Printf("Cheat: restarting level %d", state.Number)
}
