package component

import "github.com/milk9111/brickbreaker/levels"

// TransitionPhase is the orchestrator's position in the level-change
// choreography.
type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionFadeOut
	TransitionGrowing
)

func (p TransitionPhase) String() string {
	switch p {
	case TransitionFadeOut:
		return "fade_out"
	case TransitionGrowing:
		return "growing"
	default:
		return "idle"
	}
}

// LevelAdvance is the session-singleton transition state. Exactly one
// transition runs at a time: requests arriving while Active are rejected,
// not queued.
type LevelAdvance struct {
	Active        bool
	Phase         TransitionPhase
	FadeTimer     float64
	Pending       *levels.Definition
	GrowthSpawned bool
}

var LevelAdvanceComponent = New[LevelAdvance]()

// LevelSwitchRequest asks the orchestrator to jump to a specific level
// (manual switching: cheat keys, the trigger file, restart). The orchestrator
// consumes the request and applies the same Active guard as a natural
// level-clear.
type LevelSwitchRequest struct {
	Number int
}

var LevelSwitchRequestComponent = New[LevelSwitchRequest]()

// LevelSwitchIntent is raw switching input before the cheat gate: a relative
// step or an absolute target. The cheat stage resolves accepted intents into
// LevelSwitchRequest entities.
type LevelSwitchIntent struct {
	Delta    int // +1 next, -1 previous when not absolute
	Target   int
	Absolute bool
}

var LevelSwitchIntentComponent = New[LevelSwitchIntent]()
