package component

import "github.com/milk9111/brickbreaker/levels"

// Brick is one grid cell's brick. Type tracks the current tile value, so a
// multi-hit brick mutates in place as it decays.
type Brick struct {
	Type levels.Tile
	Row  int
	Col  int
}

var BrickComponent = New[Brick]()

// MarkedForDespawn is the deferred destruction path: a marked brick is
// collected by the destruction pipeline at the start of the next update,
// deduplicated against same-frame immediate destruction.
type MarkedForDespawn struct {
	DestroyedBy uint64 // destroying entity (ecs.Entity is uint64)
}

var MarkedForDespawnComponent = New[MarkedForDespawn]()
