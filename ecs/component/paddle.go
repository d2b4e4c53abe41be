package component

import "github.com/milk9111/brickbreaker/common"

// Paddle marks the paddle entity and carries its resting width in world
// units; the live physics shape is this width times the current scale.
type Paddle struct {
	BaseWidth float64
	Scale     float64
}

var PaddleComponent = New[Paddle]()

// PaddleGrowing animates the paddle's scale toward Target over Duration
// seconds with a cubic ease-out. One component serves both the grow-in
// (Target near 1) and the shrink-out on life loss (Target near 0); adding
// it again replaces the previous animation wholesale.
type PaddleGrowing struct {
	From     float64
	Target   float64
	Elapsed  float64
	Duration float64
}

// Progress returns the eased completion fraction in [0, 1].
func (p *PaddleGrowing) Progress() float64 {
	if p == nil || p.Duration <= 0 {
		return 1
	}
	frac := p.Elapsed / p.Duration
	if frac >= 1 {
		return 1
	}
	return common.EaseOutCubic(frac)
}

var PaddleGrowingComponent = New[PaddleGrowing]()

// InputLocked blocks paddle control while spawn choreography runs.
type InputLocked struct{}

var InputLockedComponent = New[InputLocked]()

// SizeEffectType says which way a paddle size powerup pushes the width.
type SizeEffectType int

const (
	SizeEffectShrink SizeEffectType = iota
	SizeEffectEnlarge
)

// PaddleSizeEffect is the active width powerup. Factor is the resolved,
// clamped width multiplier; re-pickup replaces the effect wholesale.
type PaddleSizeEffect struct {
	Type      SizeEffectType
	Factor    float64
	Remaining float64
}

var PaddleSizeEffectComponent = New[PaddleSizeEffect]()
