package system

import (
	"testing"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

func publishDestroyed(w *ecs.World, tile levels.Tile) {
	w.Events().Publish(ecs.Event{Type: ecs.EventBrickDestroyed, Data: ecs.BrickDestroyed{BrickType: tile}})
}

func TestScoringSystemCredits(t *testing.T) {
	w, session := newSessionWorld(t)
	ss := NewScoringSystem()

	publishDestroyed(w, levels.TileSimple)
	ss.Update(w, frameDT)

	score := sessionGet(t, w, session, component.ScoreComponent)
	if score.Current != 25 {
		t.Fatalf("score %d, want 25", score.Current)
	}
	if got := len(eventsOfType(w, ecs.EventMilestoneReached)); got != 0 {
		t.Fatalf("25 points reached %d milestones", got)
	}
	if lives := sessionGet(t, w, session, component.LivesComponent); lives.Remaining != component.StartingLives {
		t.Fatalf("lives %d, want untouched %d", lives.Remaining, component.StartingLives)
	}
	// notifications are read, not consumed
	if got := len(eventsOfType(w, ecs.EventBrickDestroyed)); got != 1 {
		t.Fatalf("scoring consumed the destruction notification")
	}
}

func TestScoringSystemMilestones(t *testing.T) {
	t.Run("crossing_a_tier_grants_a_life", func(t *testing.T) {
		w, session := newSessionWorld(t)
		ss := NewScoringSystem()

		score := sessionGet(t, w, session, component.ScoreComponent)
		score.Current = 4990
		publishDestroyed(w, levels.TileGravityQueer)

		ss.Update(w, frameDT)

		if score.Current != 5240 || score.LastMilestone != 1 {
			t.Fatalf("score %+v, want 5240 at milestone 1", score)
		}
		reached := eventsOfType(w, ecs.EventMilestoneReached)
		if len(reached) != 1 {
			t.Fatalf("expected one milestone notification, got %d", len(reached))
		}
		if data := reached[0].Data.(ecs.MilestoneReached); data.Tier != 1 || data.Total != 5240 {
			t.Fatalf("notification %+v", data)
		}
		if lives := sessionGet(t, w, session, component.LivesComponent); lives.Remaining != component.StartingLives+1 {
			t.Fatalf("lives %d, want %d", lives.Remaining, component.StartingLives+1)
		}
	})

	t.Run("one_frame_can_cross_two_tiers", func(t *testing.T) {
		w, session := newSessionWorld(t)
		ss := NewScoringSystem()

		score := sessionGet(t, w, session, component.ScoreComponent)
		score.Current = 9900
		publishDestroyed(w, levels.TileGravityQueer)

		ss.Update(w, frameDT)

		if score.Current != 10150 || score.LastMilestone != 2 {
			t.Fatalf("score %+v, want 10150 at milestone 2", score)
		}
		reached := eventsOfType(w, ecs.EventMilestoneReached)
		if len(reached) != 2 {
			t.Fatalf("expected two milestone notifications, got %d", len(reached))
		}
		first := reached[0].Data.(ecs.MilestoneReached)
		second := reached[1].Data.(ecs.MilestoneReached)
		if first.Tier != 1 || second.Tier != 2 {
			t.Fatalf("tiers %d, %d, want 1, 2", first.Tier, second.Tier)
		}
		if lives := sessionGet(t, w, session, component.LivesComponent); lives.Remaining != component.StartingLives+2 {
			t.Fatalf("lives %d, want %d", lives.Remaining, component.StartingLives+2)
		}
	})

	t.Run("lives_cap_at_max", func(t *testing.T) {
		w, session := newSessionWorld(t)
		ss := NewScoringSystem()

		lives := sessionGet(t, w, session, component.LivesComponent)
		lives.Remaining = lives.Max
		score := sessionGet(t, w, session, component.ScoreComponent)
		score.Current = 4990
		publishDestroyed(w, levels.TileGravityQueer)

		ss.Update(w, frameDT)

		if lives.Remaining != lives.Max {
			t.Fatalf("lives %d exceed the cap %d", lives.Remaining, lives.Max)
		}
		// the milestone itself still counts
		if score.LastMilestone != 1 || len(eventsOfType(w, ecs.EventMilestoneReached)) != 1 {
			t.Fatalf("milestone must still be recorded at max lives")
		}
	})
}

func TestScoringSystemPointlessBricks(t *testing.T) {
	w, session := newSessionWorld(t)
	ss := NewScoringSystem()

	score := sessionGet(t, w, session, component.ScoreComponent)
	score.Current = 4999
	publishDestroyed(w, levels.TileMultiHitMin)
	publishDestroyed(w, levels.TilePaddleDestroyable)

	ss.Update(w, frameDT)

	if score.Current != 4999 || score.LastMilestone != 0 {
		t.Fatalf("zero-point bricks moved the score: %+v", score)
	}
}
