package component

// LossCause says what took the ball.
type LossCause string

const (
	LossLowerGoal     LossCause = "lower_goal"
	LossHazardBrick   LossCause = "hazard_brick"
	LossHazardContact LossCause = "hazard_contact"
)

// BallKill is one brick a ball destroyed during the last physics step.
type BallKill struct {
	Brick uint64 // (ecs.Entity is uint64)
	Ball  uint64
}

// FrameContacts is the frame's digest of the last step's collision facts,
// rebuilt wholesale by the detection stage every update. The destruction
// pipeline reads BallKills; the life manager reads Losses.
type FrameContacts struct {
	BallKills []BallKill
	Losses    []LossCause
}

var FrameContactsComponent = New[FrameContacts]()
