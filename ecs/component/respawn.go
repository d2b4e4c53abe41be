package component

// Life pool defaults. A cheat restore also grants StartingLives.
const (
	StartingLives = 3
	MaxLives      = 5
)

// Lives is the session-singleton life pool.
type Lives struct {
	Remaining int
	Max       int
}

var LivesComponent = New[Lives]()

// RespawnSchedule delays the ball respawn after a life loss. Pending is set
// the moment the loss is recorded; the spawn itself happens when Remaining
// reaches zero. The gravity store is reset when the schedule fires, strictly
// before the replacement ball exists.
type RespawnSchedule struct {
	Remaining float64
	Pending   bool
}

var RespawnScheduleComponent = New[RespawnSchedule]()
