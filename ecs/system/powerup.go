package system

import (
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// Paddle size effect tuning. Effects never stack: a new pickup replaces the
// running one, and the resulting scale stays inside the clamp range.
const (
	ShrinkFactor   = 0.7
	EnlargeFactor  = 1.5
	EffectDuration = 10.0
	MinPaddleScale = 0.5
	MaxPaddleScale = 1.5
)

// PowerupSystem applies powerup bricks destroyed this frame and ages the
// running paddle size effect back to normal.
type PowerupSystem struct{}

func NewPowerupSystem() *PowerupSystem { return &PowerupSystem{} }

func (s *PowerupSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Physics() == nil {
		return
	}

	for _, evt := range w.Events().Pending() {
		if evt.Type != ecs.EventBrickDestroyed {
			continue
		}
		destroyed, ok := evt.Data.(ecs.BrickDestroyed)
		if !ok {
			continue
		}
		switch destroyed.BrickType {
		case levels.TileShrinkPaddle:
			s.applySizeEffect(w, component.SizeEffectShrink, ShrinkFactor)
		case levels.TileEnlargePaddle:
			s.applySizeEffect(w, component.SizeEffectEnlarge, EnlargeFactor)
		case levels.TileExtraLife:
			s.grantLife(w)
		}
	}

	s.tickEffects(w, dt)
}

func (s *PowerupSystem) applySizeEffect(w *ecs.World, typ component.SizeEffectType, factor float64) {
	paddle, ok := ecs.First(w, component.PaddleComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, paddle, component.PaddleComponent.Kind())
	if !ok {
		return
	}

	scale := common.Clamp(factor, MinPaddleScale, MaxPaddleScale)
	_ = ecs.Add(w, paddle, component.PaddleSizeEffectComponent.Kind(), &component.PaddleSizeEffect{
		Type:      typ,
		Factor:    scale,
		Remaining: EffectDuration,
	})
	p.Scale = scale
	w.Physics().ResizePaddle(paddle, p.BaseWidth*scale)
}

func (s *PowerupSystem) grantLife(w *ecs.World) {
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	lives, ok := ecs.Get(w, session, component.LivesComponent.Kind())
	if !ok {
		return
	}
	if lives.Remaining < lives.Max {
		lives.Remaining++
	}
}

func (s *PowerupSystem) tickEffects(w *ecs.World, dt float64) {
	pw := w.Physics()
	ecs.ForEach2(w, component.PaddleComponent.Kind(), component.PaddleSizeEffectComponent.Kind(),
		func(e ecs.Entity, paddle *component.Paddle, effect *component.PaddleSizeEffect) {
			effect.Remaining -= dt
			if effect.Remaining > 0 {
				return
			}
			_ = ecs.Remove(w, e, component.PaddleSizeEffectComponent.Kind())
			paddle.Scale = 1
			pw.ResizePaddle(e, paddle.BaseWidth)
		})
}
