package system

import (
	"math/rand"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// removal is one brick-removal candidate from either destruction path.
type removal struct {
	brick ecs.Entity
	by    ecs.Entity
}

// DestructionSystem owns brick removal end to end. It merges the immediate
// path (ball kills from contact processing) with the deferred path
// (MarkedForDespawn), deduplicates so a brick reported by both still falls
// once, publishes exactly one BrickDestroyed per brick, spawns gravity
// change requests for gravity bricks, and despawns the entity.
type DestructionSystem struct {
	rng  *rand.Rand
	seen map[ecs.Entity]struct{}
}

// NewDestructionSystem seeds the random source queer gravity draws use.
func NewDestructionSystem(seed int64) *DestructionSystem {
	return &DestructionSystem{rng: rand.New(rand.NewSource(seed))}
}

func (s *DestructionSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	// the previous frame's dedup set expires here
	s.seen = make(map[ecs.Entity]struct{})

	var candidates []removal
	if session, ok := ecs.First(w, component.SessionComponent.Kind()); ok {
		if fc, ok := ecs.Get(w, session, component.FrameContactsComponent.Kind()); ok {
			for _, kill := range fc.BallKills {
				candidates = append(candidates, removal{
					brick: ecs.Entity(kill.Brick),
					by:    ecs.Entity(kill.Ball),
				})
			}
		}
	}
	ecs.ForEach(w, component.MarkedForDespawnComponent.Kind(), func(e ecs.Entity, m *component.MarkedForDespawn) {
		candidates = append(candidates, removal{brick: e, by: ecs.Entity(m.DestroyedBy)})
	})

	for _, r := range dedupRemovals(s.seen, candidates) {
		s.destroy(w, r)
	}
}

// dedupRemovals filters out candidates already in seen, inserting the rest.
// Kept a pure set-filter so the exactly-once guarantee is checkable in
// isolation.
func dedupRemovals(seen map[ecs.Entity]struct{}, candidates []removal) []removal {
	var out []removal
	for _, c := range candidates {
		if _, dup := seen[c.brick]; dup {
			continue
		}
		seen[c.brick] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (s *DestructionSystem) destroy(w *ecs.World, r removal) {
	if !w.IsAlive(r.brick) {
		return
	}
	brick, ok := ecs.Get(w, r.brick, component.BrickComponent.Kind())
	if !ok {
		w.DestroyEntity(r.brick)
		return
	}
	t := brick.Type

	w.Events().Publish(ecs.Event{Type: ecs.EventBrickDestroyed, Data: ecs.BrickDestroyed{
		Entity:      r.brick,
		BrickType:   t,
		DestroyedBy: r.by,
	}})

	if t.IsGravityBrick() {
		if v, ok := levels.GravityForBrick(t, s.rng); ok {
			req := w.CreateEntity()
			_ = ecs.Add(w, req, component.GravityChangeRequestComponent.Kind(), &component.GravityChangeRequest{Gravity: v})
		}
	}

	w.DestroyEntity(r.brick)
}
