package component

import "github.com/milk9111/brickbreaker/common"

// GravityConfig is the session-singleton gravity store. Current is mutated
// only by the application stage and the reset-on-life-loss step;
// LevelDefault is written once per level by the idempotent initializer.
type GravityConfig struct {
	Current      common.Vec3
	LevelDefault common.Vec3

	// LastInitializedLevel guards InitializeForLevel: the initializer runs
	// every frame but only takes effect when the level identity changes.
	LastInitializedLevel *int
}

// InitializeForLevel loads the level's default gravity. No-op unless level
// differs from the last initialized level, so runtime gravity changes
// survive the initializer re-running each frame.
func (g *GravityConfig) InitializeForLevel(level int, def common.Vec3) bool {
	if g == nil {
		return false
	}
	if g.LastInitializedLevel != nil && *g.LastInitializedLevel == level {
		return false
	}
	g.Current = def
	g.LevelDefault = def
	g.LastInitializedLevel = &level
	return true
}

// Load force-loads a level's default, bypassing the initializer guard. The
// transition uses it when rebuilding a level so a restart of the current
// level still returns gravity to the default.
func (g *GravityConfig) Load(level int, def common.Vec3) {
	if g == nil {
		return
	}
	g.Current = def
	g.LevelDefault = def
	g.LastInitializedLevel = &level
}

// Apply unconditionally overwrites Current. Called once per received
// gravity-change request, in arrival order.
func (g *GravityConfig) Apply(v common.Vec3) {
	if g == nil {
		return
	}
	g.Current = v
}

// ResetToDefault restores Current to the level default. Called once per ball
// respawn, before the replacement ball exists.
func (g *GravityConfig) ResetToDefault() {
	if g == nil {
		return
	}
	g.Current = g.LevelDefault
}

var GravityConfigComponent = New[GravityConfig]()

// GravityChangeRequest is a one-shot request entity spawned by the
// destruction pipeline when a gravity brick falls. The application stage
// consumes requests in spawn order and destroys them; several in one frame
// mean the last one wins.
type GravityChangeRequest struct {
	Gravity common.Vec3
}

var GravityChangeRequestComponent = New[GravityChangeRequest]()
