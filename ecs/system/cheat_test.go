package system

import (
	"testing"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
)

func switchRequestNumbers(w *ecs.World) []int {
	var out []int
	ecs.ForEach(w, component.LevelSwitchRequestComponent.Kind(), func(_ ecs.Entity, req *component.LevelSwitchRequest) {
		out = append(out, req.Number)
	})
	return out
}

func requestToggle(t *testing.T, w *ecs.World, session ecs.Entity) {
	t.Helper()
	if err := ecs.Add(w, session, component.CheatToggleRequestComponent.Kind(), &component.CheatToggleRequest{}); err != nil {
		t.Fatal(err)
	}
}

func requestIntent(t *testing.T, w *ecs.World, session ecs.Entity, intent component.LevelSwitchIntent) {
	t.Helper()
	if err := ecs.Add(w, session, component.LevelSwitchIntentComponent.Kind(), &intent); err != nil {
		t.Fatal(err)
	}
}

func TestCheatSystemToggle(t *testing.T) {
	t.Run("enabling_resets_the_run", func(t *testing.T) {
		w, session := newSessionWorld(t)
		cs := NewCheatSystem(testCatalog(t))

		score := sessionGet(t, w, session, component.ScoreComponent)
		score.Current = 777
		score.LastMilestone = 1
		sessionGet(t, w, session, component.LivesComponent).Remaining = 1

		requestToggle(t, w, session)
		cs.Update(w, frameDT)

		if !sessionGet(t, w, session, component.CheatModeComponent).Active {
			t.Fatalf("cheat mode must be on")
		}
		if score.Current != 0 || score.LastMilestone != 0 {
			t.Fatalf("entering cheat mode must forfeit the score, got %+v", score)
		}
		if lives := sessionGet(t, w, session, component.LivesComponent); lives.Remaining != component.StartingLives {
			t.Fatalf("lives %d, want restored %d", lives.Remaining, component.StartingLives)
		}
		if ecs.Has(w, session, component.CheatToggleRequestComponent.Kind()) {
			t.Fatalf("the toggle request must be consumed")
		}
	})

	t.Run("enabling_after_game_over_owes_a_ball", func(t *testing.T) {
		w, session := newSessionWorld(t)
		cs := NewCheatSystem(testCatalog(t))

		sessionGet(t, w, session, component.GameStatusComponent).Over = true
		requestToggle(t, w, session)
		cs.Update(w, frameDT)

		if sessionGet(t, w, session, component.GameStatusComponent).Over {
			t.Fatalf("cheat revive must clear the game-over flag")
		}
		schedule, ok := ecs.Get(w, session, component.RespawnScheduleComponent.Kind())
		if !ok || !schedule.Pending {
			t.Fatalf("a revived session owes a respawn, got %+v", schedule)
		}
	})

	t.Run("disabling_forfeits_the_score", func(t *testing.T) {
		w, session := newSessionWorld(t)
		cs := NewCheatSystem(testCatalog(t))

		sessionGet(t, w, session, component.CheatModeComponent).Active = true
		sessionGet(t, w, session, component.ScoreComponent).Current = 500
		sessionGet(t, w, session, component.LivesComponent).Remaining = 2

		requestToggle(t, w, session)
		cs.Update(w, frameDT)

		if sessionGet(t, w, session, component.CheatModeComponent).Active {
			t.Fatalf("cheat mode must be off")
		}
		if score := sessionGet(t, w, session, component.ScoreComponent); score.Current != 0 {
			t.Fatalf("leaving cheat mode must forfeit the score, got %d", score.Current)
		}
		if lives := sessionGet(t, w, session, component.LivesComponent); lives.Remaining != 2 {
			t.Fatalf("leaving cheat mode must not touch lives, got %d", lives.Remaining)
		}
	})
}

func TestCheatSystemLevelSwitch(t *testing.T) {
	t.Run("gated_when_off", func(t *testing.T) {
		w, session := newSessionWorld(t)
		cs := NewCheatSystem(testCatalog(t))

		requestIntent(t, w, session, component.LevelSwitchIntent{Delta: 1})
		cs.Update(w, frameDT)

		if got := len(eventsOfType(w, ecs.EventUIBeep)); got != 1 {
			t.Fatalf("expected one beep, got %d", got)
		}
		if got := switchRequestNumbers(w); len(got) != 0 {
			t.Fatalf("gated switch produced requests %v", got)
		}
		if ecs.Has(w, session, component.LevelSwitchIntentComponent.Kind()) {
			t.Fatalf("the intent must be consumed either way")
		}
	})

	table := []struct {
		name   string
		level  int
		intent component.LevelSwitchIntent
		want   []int
	}{
		{"next_advances", 1, component.LevelSwitchIntent{Delta: 1}, []int{2}},
		{"next_wraps", 3, component.LevelSwitchIntent{Delta: 1}, []int{1}},
		{"prev_steps_back", 2, component.LevelSwitchIntent{Delta: -1}, []int{1}},
		{"prev_wraps", 1, component.LevelSwitchIntent{Delta: -1}, []int{3}},
		{"absolute_jump", 1, component.LevelSwitchIntent{Absolute: true, Target: 3}, []int{3}},
		{"absolute_unknown_ignored", 1, component.LevelSwitchIntent{Absolute: true, Target: 99}, nil},
	}
	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			w, session := newSessionWorld(t)
			cs := NewCheatSystem(testCatalog(t))

			sessionGet(t, w, session, component.CheatModeComponent).Active = true
			sessionGet(t, w, session, component.LevelStateComponent).Number = tt.level

			requestIntent(t, w, session, tt.intent)
			cs.Update(w, frameDT)

			got := switchRequestNumbers(w)
			if len(got) != len(tt.want) {
				t.Fatalf("requests %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("requests %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCheatSystemRestart(t *testing.T) {
	t.Run("gated_when_off", func(t *testing.T) {
		w, session := newSessionWorld(t)
		cs := NewCheatSystem(testCatalog(t))

		if err := ecs.Add(w, session, component.RestartRequestComponent.Kind(), &component.RestartRequest{}); err != nil {
			t.Fatal(err)
		}
		cs.Update(w, frameDT)

		if got := len(eventsOfType(w, ecs.EventUIBeep)); got != 1 {
			t.Fatalf("expected one beep, got %d", got)
		}
		if got := switchRequestNumbers(w); len(got) != 0 {
			t.Fatalf("gated restart produced requests %v", got)
		}
	})

	t.Run("restarts_the_current_level", func(t *testing.T) {
		w, session := newSessionWorld(t)
		cs := NewCheatSystem(testCatalog(t))

		sessionGet(t, w, session, component.CheatModeComponent).Active = true
		sessionGet(t, w, session, component.LevelStateComponent).Number = 2
		sessionGet(t, w, session, component.LivesComponent).Remaining = 1
		sessionGet(t, w, session, component.ScoreComponent).Current = 900
		sessionGet(t, w, session, component.GameStatusComponent).Over = true

		if err := ecs.Add(w, session, component.RestartRequestComponent.Kind(), &component.RestartRequest{}); err != nil {
			t.Fatal(err)
		}
		cs.Update(w, frameDT)

		if got := switchRequestNumbers(w); len(got) != 1 || got[0] != 2 {
			t.Fatalf("requests %v, want [2]", got)
		}
		if lives := sessionGet(t, w, session, component.LivesComponent); lives.Remaining != component.StartingLives {
			t.Fatalf("lives %d, want %d", lives.Remaining, component.StartingLives)
		}
		if score := sessionGet(t, w, session, component.ScoreComponent); score.Current != 0 {
			t.Fatalf("score %d, want 0", score.Current)
		}
		if sessionGet(t, w, session, component.GameStatusComponent).Over {
			t.Fatalf("a restart clears the game-over flag")
		}
	})
}
