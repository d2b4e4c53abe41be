package component

import "github.com/milk9111/brickbreaker/common"

// Hazard marks a free-flying enemy. Hazards steer themselves via script and
// are never affected by the session gravity: their bodies pin a zero-gravity
// velocity update.
type Hazard struct {
	// MinHorizontalSpeed is re-asserted every steering tick so a hazard
	// never stalls against a wall.
	MinHorizontalSpeed float64
	// Heading is the last direction chosen by the steering script, kept so
	// the script can bias its next draw.
	Heading common.Vec3
}

var HazardComponent = New[Hazard]()

// PendingHazardSpawn is one hazard the spawner owes the arena, released
// when its delay runs out.
type PendingHazardSpawn struct {
	Row       int
	Col       int
	Remaining float64
}

// HazardSpawner is the session-singleton spawn ledger. FlipSign alternates
// the initial horizontal direction between consecutive spawns.
type HazardSpawner struct {
	Pending  []PendingHazardSpawn
	FlipSign bool
}

var HazardSpawnerComponent = New[HazardSpawner]()
