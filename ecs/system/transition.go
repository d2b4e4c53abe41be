package system

import (
	"log"

	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// FadeDuration is how long the fade-out phase holds before the next level's
// content replaces the old.
const FadeDuration = 1.0

// TransitionSystem owns the level lifecycle: it notices a cleared level,
// honors manual switch requests, and walks the fade-out/grow-in choreography.
// Exactly one transition runs at a time; requests arriving while one is
// active are dropped.
type TransitionSystem struct {
	catalog *levels.Catalog
}

func NewTransitionSystem(catalog *levels.Catalog) *TransitionSystem {
	return &TransitionSystem{catalog: catalog}
}

// SetCatalog swaps the level set after a live reload.
func (s *TransitionSystem) SetCatalog(catalog *levels.Catalog) {
	if s == nil {
		return
	}
	s.catalog = catalog
}

func (s *TransitionSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	advance, ok := ecs.Get(w, session, component.LevelAdvanceComponent.Kind())
	if !ok {
		return
	}
	over := false
	if status, ok := ecs.Get(w, session, component.GameStatusComponent.Kind()); ok {
		over = status.Over
	}

	if target := s.consumeRequests(w, advance, over); target != nil {
		s.begin(w, session, advance, target, false)
		return
	}

	if !advance.Active {
		if !over {
			s.checkCompletion(w, session, advance)
		}
		return
	}

	switch advance.Phase {
	case component.TransitionFadeOut:
		advance.FadeTimer -= dt
		if advance.FadeTimer <= 0 {
			s.populate(w, session, advance)
		}
	case component.TransitionGrowing:
		growing := false
		ecs.ForEach2(w, component.PaddleComponent.Kind(), component.PaddleGrowingComponent.Kind(),
			func(ecs.Entity, *component.Paddle, *component.PaddleGrowing) {
				growing = true
			})
		if growing {
			return
		}
		s.finish(w, session, advance)
	default:
		advance.Active = false
	}
}

// consumeRequests destroys every switch request entity and returns the level
// the first valid one names. Requests are rejected while a transition is
// already running or the game is over.
func (s *TransitionSystem) consumeRequests(w *ecs.World, advance *component.LevelAdvance, over bool) *levels.Definition {
	var target *levels.Definition
	for _, e := range ecs.Query(w, component.LevelSwitchRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.LevelSwitchRequestComponent.Kind())
		w.DestroyEntity(e)
		if !ok || target != nil {
			continue
		}
		switch {
		case advance.Active:
			log.Printf("Transition: busy, dropping switch to level %d", req.Number)
		case over:
			log.Printf("Transition: game over, dropping switch to level %d", req.Number)
		case s.catalog == nil:
		default:
			def, found := s.catalog.ByNumber(req.Number)
			if !found {
				log.Printf("Transition: no level %d", req.Number)
				continue
			}
			target = def
		}
	}
	return target
}

// checkCompletion starts the next level once no completion-counting brick
// remains.
func (s *TransitionSystem) checkCompletion(w *ecs.World, session ecs.Entity, advance *component.LevelAdvance) {
	state, ok := ecs.Get(w, session, component.LevelStateComponent.Kind())
	if !ok || state.Number == 0 || s.catalog == nil {
		return
	}

	remaining := 0
	ecs.ForEach(w, component.BrickComponent.Kind(), func(_ ecs.Entity, b *component.Brick) {
		if b.Type.CountsTowardCompletion() {
			remaining++
		}
	})
	if remaining > 0 {
		return
	}

	next := s.catalog.Next(state.Number)
	if next == nil {
		return
	}
	s.begin(w, session, advance, next, true)
}

// begin starts the choreography: the moving pieces leave immediately, the
// bricks stay visible through the fade.
func (s *TransitionSystem) begin(w *ecs.World, session ecs.Entity, advance *component.LevelAdvance, def *levels.Definition, natural bool) {
	advance.Active = true
	advance.Phase = component.TransitionFadeOut
	advance.FadeTimer = FadeDuration
	advance.Pending = def
	advance.GrowthSpawned = false

	ecs.ForEach(w, component.BallComponent.Kind(), func(e ecs.Entity, _ *component.Ball) {
		w.DestroyEntity(e)
	})
	ecs.ForEach(w, component.PaddleComponent.Kind(), func(e ecs.Entity, _ *component.Paddle) {
		w.DestroyEntity(e)
	})
	ecs.ForEach(w, component.HazardComponent.Kind(), func(e ecs.Entity, _ *component.Hazard) {
		w.DestroyEntity(e)
	})

	if natural {
		if state, ok := ecs.Get(w, session, component.LevelStateComponent.Kind()); ok {
			w.Events().Publish(ecs.Event{Type: ecs.EventLevelCompleted, Data: ecs.LevelCompleted{Number: state.Number}})
		}
	}
	log.Printf("Transition: to level %d", def.Number)
}

// populate swaps the level content in at the bottom of the fade: old bricks
// out silently, new bricks in, hazard queue and spawn points rebuilt, and
// the locked paddle plus frozen ball placed before anything can move.
func (s *TransitionSystem) populate(w *ecs.World, session ecs.Entity, advance *component.LevelAdvance) {
	def := advance.Pending
	if def == nil {
		advance.Active = false
		advance.Phase = component.TransitionIdle
		return
	}

	ecs.ForEach(w, component.BrickComponent.Kind(), func(e ecs.Entity, _ *component.Brick) {
		w.DestroyEntity(e)
	})

	if state, ok := ecs.Get(w, session, component.LevelStateComponent.Kind()); ok {
		state.Number = def.Number
		state.DefaultGravity = def.DefaultGravity()
	}
	if cfg, ok := ecs.Get(w, session, component.GravityConfigComponent.Kind()); ok {
		cfg.Load(def.Number, def.DefaultGravity())
	}

	spawns := def.Spawns()
	_ = ecs.Add(w, session, component.SpawnPointsComponent.Kind(), &component.SpawnPoints{
		PaddleX: spawns.PaddleX,
		PaddleY: spawns.PaddleY,
		BallX:   spawns.BallX,
		BallY:   spawns.BallY,
	})

	for r, row := range def.Grid {
		for c, t := range row {
			if !t.IsBrick() {
				continue
			}
			e := w.CreateEntity()
			_ = ecs.Add(w, e, component.BrickComponent.Kind(), &component.Brick{Type: t, Row: r, Col: c})
			w.Physics().AddBrick(e, r, c)
		}
	}

	pending := make([]component.PendingHazardSpawn, 0, len(def.Hazards))
	for _, h := range def.Hazards {
		pending = append(pending, component.PendingHazardSpawn{Row: h.Row, Col: h.Col, Remaining: h.Delay})
	}
	if spawner, ok := ecs.Get(w, session, component.HazardSpawnerComponent.Kind()); ok {
		spawner.Pending = pending
		spawner.FlipSign = false
	}

	spawnPlayfield(w, session)

	advance.Phase = component.TransitionGrowing
	advance.GrowthSpawned = true
	log.Printf("Transition: level %d ready", def.Number)
}

func (s *TransitionSystem) finish(w *ecs.World, session ecs.Entity, advance *component.LevelAdvance) {
	advance.Active = false
	advance.Phase = component.TransitionIdle
	advance.Pending = nil
	advance.GrowthSpawned = false

	if state, ok := ecs.Get(w, session, component.LevelStateComponent.Kind()); ok {
		w.Events().Publish(ecs.Event{Type: ecs.EventLevelStarted, Data: ecs.LevelStarted{Number: state.Number}})
	}
}
