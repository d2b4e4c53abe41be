package component

// Ball marks the ball entity.
type Ball struct{}

var BallComponent = New[Ball]()

// BallFrozen suppresses the ball's gravity contribution and pins its
// velocity to zero while spawn choreography runs. Removal is the second
// step of the two-step unfreeze; the body is re-activated at the same time
// so the engine cannot leave it dormant.
type BallFrozen struct{}

var BallFrozenComponent = New[BallFrozen]()
