package brickbreaker

import (
	"fmt"

	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/ecs/system"
	"github.com/milk9111/brickbreaker/levels"
	"github.com/milk9111/brickbreaker/scripts"
)

// Game wires the world, its systems, and the session singletons into a
// steppable core. The embedding shell (CLI, UI, tests) drives it with Step
// and the input methods, reads state back through the accessors, and drains
// notifications for audio or display.
type Game struct {
	world      *ecs.World
	session    ecs.Entity
	transition *system.TransitionSystem
	cheat      *system.CheatSystem
}

// NewGame builds a core around the given level catalog and physics tuning.
// The first catalog level starts loading on the first Step.
func NewGame(catalog *levels.Catalog, cfg ecs.PhysicsConfig, seed int64) (*Game, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("game: catalog is empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	w := ecs.NewWorld()
	w.SetPhysics(ecs.NewPhysicsWorld(cfg))

	session := w.CreateEntity()
	_ = ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{})
	_ = ecs.Add(w, session, component.LevelStateComponent.Kind(), &component.LevelState{})
	_ = ecs.Add(w, session, component.ScoreComponent.Kind(), &component.Score{})
	_ = ecs.Add(w, session, component.CheatModeComponent.Kind(), &component.CheatMode{})
	_ = ecs.Add(w, session, component.GameStatusComponent.Kind(), &component.GameStatus{})
	_ = ecs.Add(w, session, component.InputStateComponent.Kind(), &component.InputState{})
	_ = ecs.Add(w, session, component.PausedComponent.Kind(), &component.Paused{})
	_ = ecs.Add(w, session, component.GravityConfigComponent.Kind(), &component.GravityConfig{})
	_ = ecs.Add(w, session, component.HazardSpawnerComponent.Kind(), &component.HazardSpawner{})
	_ = ecs.Add(w, session, component.LivesComponent.Kind(), &component.Lives{
		Remaining: component.StartingLives,
		Max:       component.MaxLives,
	})
	// boot rides the normal transition path: the first Step fades straight
	// into the first level without a completion notification
	_ = ecs.Add(w, session, component.LevelAdvanceComponent.Kind(), &component.LevelAdvance{
		Active:  true,
		Phase:   component.TransitionFadeOut,
		Pending: catalog.First(),
	})

	steerSrc, err := scripts.HazardSteer()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	hazards, err := system.NewHazardSystem(steerSrc, seed)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	transition := system.NewTransitionSystem(catalog)
	cheat := system.NewCheatSystem(catalog)

	// frame order: inputs and last step's contacts resolve first, spawn
	// choreography next, then removal and its bookkeeping, then gravity,
	// and the space steps last
	w.AddSystem(system.NewPaddleControlSystem())
	w.AddSystem(system.NewContactSystem())
	w.AddSystem(cheat)
	w.AddSystem(hazards)
	w.AddSystem(system.NewFrozenBallSystem())
	w.AddSystem(system.NewGrowthSystem())
	w.AddSystem(system.NewRespawnSystem())
	w.AddSystem(transition)
	w.AddSystem(system.NewDestructionSystem(seed))
	w.AddSystem(system.NewScoringSystem())
	w.AddSystem(system.NewPowerupSystem())
	w.AddSystem(system.NewGravitySystem())
	w.AddSystem(system.NewPhysicsSystem())

	return &Game{
		world:      w,
		session:    session,
		transition: transition,
		cheat:      cheat,
	}, nil
}

// Step advances the core one tick. A paused game holds perfectly still.
func (g *Game) Step(dt float64) {
	if g == nil || dt <= 0 {
		return
	}
	if paused, ok := ecs.Get(g.world, g.session, component.PausedComponent.Kind()); ok && paused.Active {
		return
	}
	g.world.Update(dt)
}

// MovePaddle sets the paddle input for subsequent steps, clamped to [-1, 1].
func (g *Game) MovePaddle(dir float64) {
	if input, ok := ecs.Get(g.world, g.session, component.InputStateComponent.Kind()); ok {
		input.MoveDir = common.Clamp(dir, -1, 1)
	}
}

// TogglePause flips the pause latch and reports the new state.
func (g *Game) TogglePause() bool {
	paused, ok := ecs.Get(g.world, g.session, component.PausedComponent.Kind())
	if !ok {
		return false
	}
	paused.Active = !paused.Active
	return paused.Active
}

// ToggleCheat queues a cheat mode toggle for the next step.
func (g *Game) ToggleCheat() {
	_ = ecs.Add(g.world, g.session, component.CheatToggleRequestComponent.Kind(), &component.CheatToggleRequest{})
}

// Restart queues a restart of the current level. Gated on cheat mode.
func (g *Game) Restart() {
	_ = ecs.Add(g.world, g.session, component.RestartRequestComponent.Kind(), &component.RestartRequest{})
}

// RequestNextLevel queues a switch to the next catalog level, wrapping at
// the end. Gated on cheat mode.
func (g *Game) RequestNextLevel() {
	_ = ecs.Add(g.world, g.session, component.LevelSwitchIntentComponent.Kind(), &component.LevelSwitchIntent{Delta: 1})
}

// RequestPreviousLevel queues a switch to the previous catalog level,
// wrapping at the start. Gated on cheat mode.
func (g *Game) RequestPreviousLevel() {
	_ = ecs.Add(g.world, g.session, component.LevelSwitchIntentComponent.Kind(), &component.LevelSwitchIntent{Delta: -1})
}

// RequestLevel queues a switch to an exact level number. Gated on cheat mode.
func (g *Game) RequestLevel(number int) {
	_ = ecs.Add(g.world, g.session, component.LevelSwitchIntentComponent.Kind(), &component.LevelSwitchIntent{
		Target:   number,
		Absolute: true,
	})
}

// ReplaceCatalog swaps the level set, for live reload of edited level files.
// The running level keeps playing; the new set applies from the next switch
// or completion.
func (g *Game) ReplaceCatalog(catalog *levels.Catalog) error {
	if catalog == nil || catalog.Len() == 0 {
		return fmt.Errorf("game: replacement catalog is empty")
	}
	g.transition.SetCatalog(catalog)
	g.cheat.SetCatalog(catalog)
	return nil
}

// Notifications returns and clears the events the last Step published. The
// queue holds one frame: drain after every Step or the next one overwrites it.
func (g *Game) Notifications() []ecs.Event {
	return g.world.Events().Drain()
}

// CurrentGravity is the live gravity vector acting on balls.
func (g *Game) CurrentGravity() common.Vec3 {
	if cfg, ok := ecs.Get(g.world, g.session, component.GravityConfigComponent.Kind()); ok {
		return cfg.Current
	}
	return common.Vec3{}
}

// DefaultGravity is the running level's reset target.
func (g *Game) DefaultGravity() common.Vec3 {
	if cfg, ok := ecs.Get(g.world, g.session, component.GravityConfigComponent.Kind()); ok {
		return cfg.LevelDefault
	}
	return common.Vec3{}
}

// LevelNumber is the running level, zero before the first loads.
func (g *Game) LevelNumber() int {
	if state, ok := ecs.Get(g.world, g.session, component.LevelStateComponent.Kind()); ok {
		return state.Number
	}
	return 0
}

// Lives is the remaining life count.
func (g *Game) Lives() int {
	if lives, ok := ecs.Get(g.world, g.session, component.LivesComponent.Kind()); ok {
		return lives.Remaining
	}
	return 0
}

// Score is the running score.
func (g *Game) Score() int {
	if score, ok := ecs.Get(g.world, g.session, component.ScoreComponent.Kind()); ok {
		return score.Current
	}
	return 0
}

// BricksRemaining counts the bricks still required for level completion.
func (g *Game) BricksRemaining() int {
	remaining := 0
	ecs.ForEach(g.world, component.BrickComponent.Kind(), func(_ ecs.Entity, b *component.Brick) {
		if b.Type.CountsTowardCompletion() {
			remaining++
		}
	})
	return remaining
}

// TransitionActive reports whether a level transition is in flight.
func (g *Game) TransitionActive() bool {
	if advance, ok := ecs.Get(g.world, g.session, component.LevelAdvanceComponent.Kind()); ok {
		return advance.Active
	}
	return false
}

// Paused reports the pause latch.
func (g *Game) Paused() bool {
	if paused, ok := ecs.Get(g.world, g.session, component.PausedComponent.Kind()); ok {
		return paused.Active
	}
	return false
}

// CheatActive reports whether cheat mode is on.
func (g *Game) CheatActive() bool {
	if cheat, ok := ecs.Get(g.world, g.session, component.CheatModeComponent.Kind()); ok {
		return cheat.Active
	}
	return false
}

// GameOver reports whether the life pool is exhausted.
func (g *Game) GameOver() bool {
	if status, ok := ecs.Get(g.world, g.session, component.GameStatusComponent.Kind()); ok {
		return status.Over
	}
	return false
}
