package system

import (
	"testing"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

func TestPowerupSystemSizeEffects(t *testing.T) {
	t.Run("enlarge", func(t *testing.T) {
		w, _ := newSessionWorld(t)
		ps := NewPowerupSystem()
		paddle := spawnLivePaddle(t, w, 1)

		publishDestroyed(w, levels.TileEnlargePaddle)
		ps.Update(w, frameDT)

		effect, ok := ecs.Get(w, paddle, component.PaddleSizeEffectComponent.Kind())
		if !ok {
			t.Fatalf("no size effect on the paddle")
		}
		if effect.Type != component.SizeEffectEnlarge || effect.Factor != EnlargeFactor {
			t.Fatalf("effect %+v", effect)
		}
		if effect.Remaining != EffectDuration-frameDT {
			t.Fatalf("remaining %v, want %v", effect.Remaining, EffectDuration-frameDT)
		}
		if _, p := firstPaddle(t, w); p.Scale != EnlargeFactor {
			t.Fatalf("scale %v, want %v", p.Scale, EnlargeFactor)
		}
	})

	t.Run("shrink", func(t *testing.T) {
		w, _ := newSessionWorld(t)
		ps := NewPowerupSystem()
		paddle := spawnLivePaddle(t, w, 1)

		publishDestroyed(w, levels.TileShrinkPaddle)
		ps.Update(w, frameDT)

		effect, ok := ecs.Get(w, paddle, component.PaddleSizeEffectComponent.Kind())
		if !ok || effect.Type != component.SizeEffectShrink || effect.Factor != ShrinkFactor {
			t.Fatalf("effect %+v", effect)
		}
		if _, p := firstPaddle(t, w); p.Scale != ShrinkFactor {
			t.Fatalf("scale %v, want %v", p.Scale, ShrinkFactor)
		}
	})

	t.Run("new_pickup_replaces_the_running_effect", func(t *testing.T) {
		w, _ := newSessionWorld(t)
		ps := NewPowerupSystem()
		paddle := spawnLivePaddle(t, w, 1)

		publishDestroyed(w, levels.TileEnlargePaddle)
		publishDestroyed(w, levels.TileShrinkPaddle)
		ps.Update(w, frameDT)

		effect, ok := ecs.Get(w, paddle, component.PaddleSizeEffectComponent.Kind())
		if !ok {
			t.Fatalf("no size effect on the paddle")
		}
		if effect.Type != component.SizeEffectShrink {
			t.Fatalf("the later pickup must win, got %+v", effect)
		}
		if _, p := firstPaddle(t, w); p.Scale != ShrinkFactor {
			t.Fatalf("scale %v, want %v", p.Scale, ShrinkFactor)
		}
	})

	t.Run("replacement_restarts_the_clock", func(t *testing.T) {
		w, _ := newSessionWorld(t)
		ps := NewPowerupSystem()
		paddle := spawnLivePaddle(t, w, 1)
		if err := ecs.Add(w, paddle, component.PaddleSizeEffectComponent.Kind(), &component.PaddleSizeEffect{
			Type:      component.SizeEffectEnlarge,
			Factor:    EnlargeFactor,
			Remaining: 2.5,
		}); err != nil {
			t.Fatal(err)
		}

		publishDestroyed(w, levels.TileShrinkPaddle)
		ps.Update(w, frameDT)

		effect, _ := ecs.Get(w, paddle, component.PaddleSizeEffectComponent.Kind())
		if effect == nil || effect.Remaining != EffectDuration-frameDT {
			t.Fatalf("effect %+v, want a fresh clock", effect)
		}
	})

	t.Run("expiry_restores_the_paddle", func(t *testing.T) {
		w, _ := newSessionWorld(t)
		ps := NewPowerupSystem()
		paddle := spawnLivePaddle(t, w, EnlargeFactor)
		if err := ecs.Add(w, paddle, component.PaddleSizeEffectComponent.Kind(), &component.PaddleSizeEffect{
			Type:      component.SizeEffectEnlarge,
			Factor:    EnlargeFactor,
			Remaining: 0.01,
		}); err != nil {
			t.Fatal(err)
		}

		ps.Update(w, frameDT)

		if ecs.Has(w, paddle, component.PaddleSizeEffectComponent.Kind()) {
			t.Fatalf("expired effect must be removed")
		}
		if _, p := firstPaddle(t, w); p.Scale != 1 {
			t.Fatalf("scale %v, want 1 after expiry", p.Scale)
		}
	})

	t.Run("no_paddle_is_a_quiet_frame", func(t *testing.T) {
		w, _ := newSessionWorld(t)
		ps := NewPowerupSystem()

		publishDestroyed(w, levels.TileEnlargePaddle)
		ps.Update(w, frameDT)
	})
}

func TestPowerupSystemExtraLife(t *testing.T) {
	t.Run("grants_a_life", func(t *testing.T) {
		w, session := newSessionWorld(t)
		ps := NewPowerupSystem()

		publishDestroyed(w, levels.TileExtraLife)
		ps.Update(w, frameDT)

		if lives := sessionGet(t, w, session, component.LivesComponent); lives.Remaining != component.StartingLives+1 {
			t.Fatalf("lives %d, want %d", lives.Remaining, component.StartingLives+1)
		}
	})

	t.Run("capped_at_max", func(t *testing.T) {
		w, session := newSessionWorld(t)
		ps := NewPowerupSystem()

		lives := sessionGet(t, w, session, component.LivesComponent)
		lives.Remaining = lives.Max
		publishDestroyed(w, levels.TileExtraLife)
		ps.Update(w, frameDT)

		if lives.Remaining != lives.Max {
			t.Fatalf("lives %d exceed the cap %d", lives.Remaining, lives.Max)
		}
	})
}
