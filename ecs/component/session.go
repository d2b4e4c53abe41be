package component

import "github.com/milk9111/brickbreaker/common"

// Session tags the singleton entity that carries run-wide state: score,
// lives, gravity config, transition state, spawn points.
type Session struct{}

var SessionComponent = New[Session]()

// LevelState is the currently loaded level's identity and default gravity.
// The gravity initializer reads it every frame; the guard in the store makes
// that idempotent.
type LevelState struct {
	Number         int
	DefaultGravity common.Vec3
}

var LevelStateComponent = New[LevelState]()

// Score accumulates brick points. LastMilestone is the highest milestone
// tier already rewarded, so crossing several thresholds in one frame still
// grants one life per tier.
type Score struct {
	Current       int
	LastMilestone int
}

var ScoreComponent = New[Score]()

// CheatMode toggles the dev shortcuts: manual level switching, gravity
// presets, and life restore.
type CheatMode struct {
	Active bool
}

var CheatModeComponent = New[CheatMode]()

// GameStatus flips Over when the last life is spent. A finished session
// stops respawning and ignores transitions until restarted.
type GameStatus struct {
	Over bool
}

var GameStatusComponent = New[GameStatus]()

// SpawnPoints remembers where the current level places the paddle and ball,
// in world units, so respawns and transitions do not re-read the matrix.
type SpawnPoints struct {
	PaddleX float64
	PaddleY float64
	BallX   float64
	BallY   float64
}

var SpawnPointsComponent = New[SpawnPoints]()

// InputState is the paddle movement intent for the current frame.
// MoveDir is -1, 0, or +1.
type InputState struct {
	MoveDir float64
}

var InputStateComponent = New[InputState]()

// Paused freezes the pipeline. Systems other than input skip their work
// while the session is paused.
type Paused struct {
	Active bool
}

var PausedComponent = New[Paused]()

// CheatToggleRequest asks the cheat stage to flip cheat mode this frame.
type CheatToggleRequest struct{}

var CheatToggleRequestComponent = New[CheatToggleRequest]()

// RestartRequest asks for a fresh run of the current level. Honored only
// while cheat mode is active.
type RestartRequest struct{}

var RestartRequestComponent = New[RestartRequest]()
