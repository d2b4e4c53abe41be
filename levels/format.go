package levels

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/brickbreaker/common"
)

// Arena geometry. The grid is always normalized to GridRows x GridCols;
// each cell maps to a CellWidth x CellHeight patch of the 40x30 arena with
// +y toward the lower goal.
const (
	GridRows = 20
	GridCols = 20

	CellWidth  = 2.0
	CellHeight = 1.5

	ArenaWidth  = float64(GridCols) * CellWidth
	ArenaHeight = float64(GridRows) * CellHeight
)

// GravityComponentLimit bounds every component of an accepted gravity
// vector. Vectors outside the bound are logged and dropped, never applied.
const GravityComponentLimit = 30.0

// Tile identifies what occupies one cell of a level matrix.
type Tile byte

const (
	TileEmpty       Tile = 0
	TilePaddleSpawn Tile = 1
	TileBallSpawn   Tile = 2

	// Multi-hit bricks decay one step per hit; the last step turns into a
	// simple brick.
	TileMultiHitMin Tile = 10
	TileMultiHitMax Tile = 13

	TileSimple Tile = 20

	TileGravityZero  Tile = 21
	TileGravityMoon  Tile = 22
	TileGravityEarth Tile = 23
	TileGravityHigh  Tile = 24
	TileGravityQueer Tile = 25

	TileShrinkPaddle  Tile = 30
	TileEnlargePaddle Tile = 32

	TileExtraLife Tile = 41
	TileHazard    Tile = 42

	TileMagnet            Tile = 55
	TilePaddleDestroyable Tile = 57

	TileIndestructible       Tile = 90
	TileIndestructibleHazard Tile = 91
)

// IsBrick reports whether the tile spawns a brick entity.
func (t Tile) IsBrick() bool {
	return t >= TileMultiHitMin
}

// IsMultiHit reports whether the tile is a decaying multi-hit brick.
func (t Tile) IsMultiHit() bool {
	return t >= TileMultiHitMin && t <= TileMultiHitMax
}

// IsGravityBrick reports whether destroying the tile changes gravity.
func (t Tile) IsGravityBrick() bool {
	return t >= TileGravityZero && t <= TileGravityQueer
}

// IsHazardBrick reports whether paddle contact with the tile costs a life.
func (t Tile) IsHazardBrick() bool {
	return t == TileHazard || t == TileIndestructibleHazard
}

// Indestructible tiles survive everything and never count toward level
// completion.
func (t Tile) Indestructible() bool {
	return t == TileIndestructible || t == TileIndestructibleHazard
}

// CountsTowardCompletion reports whether the level needs this brick gone
// before it is considered cleared.
func (t Tile) CountsTowardCompletion() bool {
	return t.IsBrick() && !t.Indestructible()
}

// BallDestroys reports whether a ball hit removes the brick outright.
// Multi-hit bricks decay instead, paddle-destroyable and indestructible
// bricks ignore the ball.
func (t Tile) BallDestroys() bool {
	return t.IsBrick() && !t.IsMultiHit() && !t.Indestructible() && t != TilePaddleDestroyable
}

// Decay returns the tile one hit later for multi-hit bricks. The last
// multi-hit step becomes a simple brick. ok is false for every other tile.
func (t Tile) Decay() (next Tile, ok bool) {
	if !t.IsMultiHit() {
		return t, false
	}
	if t == TileMultiHitMin {
		return TileSimple, true
	}
	return t - 1, true
}

// Points is the score awarded when the brick is destroyed. Tiles absent
// from the table award nothing.
func (t Tile) Points() int {
	switch t {
	case TileSimple:
		return 25
	case TileGravityZero:
		return 125
	case TileGravityMoon:
		return 75
	case TileGravityEarth:
		return 125
	case TileGravityHigh:
		return 150
	case TileGravityQueer:
		return 250
	case TileHazard:
		return 90
	default:
		return 0
	}
}

func (t Tile) String() string {
	switch {
	case t == TileEmpty:
		return "empty"
	case t == TilePaddleSpawn:
		return "paddle-spawn"
	case t == TileBallSpawn:
		return "ball-spawn"
	case t.IsMultiHit():
		return fmt.Sprintf("multi-hit(%d)", int(t-TileMultiHitMin)+1)
	case t == TileSimple:
		return "simple"
	case t == TileGravityZero:
		return "gravity-zero"
	case t == TileGravityMoon:
		return "gravity-moon"
	case t == TileGravityEarth:
		return "gravity-earth"
	case t == TileGravityHigh:
		return "gravity-high"
	case t == TileGravityQueer:
		return "gravity-queer"
	case t == TileShrinkPaddle:
		return "shrink-paddle"
	case t == TileEnlargePaddle:
		return "enlarge-paddle"
	case t == TileExtraLife:
		return "extra-life"
	case t == TileHazard:
		return "hazard"
	case t == TileMagnet:
		return "magnet"
	case t == TilePaddleDestroyable:
		return "paddle-destroyable"
	case t == TileIndestructible:
		return "indestructible"
	case t == TileIndestructibleHazard:
		return "indestructible-hazard"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// known reports whether the value is part of the tile vocabulary. Unknown
// values normalize to empty.
func known(v int) bool {
	t := Tile(v)
	switch {
	case v < 0 || v > 255:
		return false
	case t <= TileBallSpawn:
		return true
	case t.IsMultiHit(), t == TileSimple, t.IsGravityBrick():
		return true
	case t == TileShrinkPaddle, t == TileEnlargePaddle:
		return true
	case t == TileExtraLife, t == TileHazard:
		return true
	case t == TileMagnet, t == TilePaddleDestroyable:
		return true
	case t == TileIndestructible, t == TileIndestructibleHazard:
		return true
	default:
		return false
	}
}

// Named gravity vectors for the non-random gravity bricks. X is the
// in-plane pull toward the lower goal, Z the in-plane sideways axis, Y is
// out-of-plane and stays zero.
var (
	GravityZeroVec  = common.Vec3{}
	GravityMoonVec  = common.Vec3{X: 2}
	GravityEarthVec = common.Vec3{X: 10}
	GravityHighVec  = common.Vec3{X: 20}
)

// Queer gravity draw bounds.
const (
	QueerPullMin = -2.0
	QueerPullMax = 15.0
	QueerSideMin = -5.0
	QueerSideMax = 5.0
)

// QueerGravity draws a random gravity with the pull component in
// [QueerPullMin, QueerPullMax], the sideways component in
// [QueerSideMin, QueerSideMax], and the out-of-plane component pinned to
// zero. A nil rng falls back to the package-level source.
func QueerGravity(rng *rand.Rand) common.Vec3 {
	f := rand.Float64
	if rng != nil {
		f = rng.Float64
	}
	return common.Vec3{
		X: QueerPullMin + f()*(QueerPullMax-QueerPullMin),
		Z: QueerSideMin + f()*(QueerSideMax-QueerSideMin),
	}
}

// GravityForBrick resolves the gravity vector a destroyed gravity brick
// requests. ok is false for non-gravity tiles.
func GravityForBrick(t Tile, rng *rand.Rand) (common.Vec3, bool) {
	switch t {
	case TileGravityZero:
		return GravityZeroVec, true
	case TileGravityMoon:
		return GravityMoonVec, true
	case TileGravityEarth:
		return GravityEarthVec, true
	case TileGravityHigh:
		return GravityHighVec, true
	case TileGravityQueer:
		return QueerGravity(rng), true
	default:
		return common.Vec3{}, false
	}
}

// ValidGravity reports whether a gravity vector may be applied: every
// component finite and within the accepted bound.
func ValidGravity(v common.Vec3) bool {
	return v.Finite() && v.InRange(-GravityComponentLimit, GravityComponentLimit)
}

// CellCenter maps a grid cell to its world-space center.
func CellCenter(row, col int) (x, y float64) {
	return float64(col)*CellWidth + CellWidth/2, float64(row)*CellHeight + CellHeight/2
}

// NormalizationMetrics counts the repairs NormalizeMatrix performed.
type NormalizationMetrics struct {
	PaddedRows     int
	TruncatedRows  int
	PaddedCells    int
	TruncatedCells int
	UnknownCells   int
}

// Dirty reports whether normalization changed anything worth a warning.
func (m NormalizationMetrics) Dirty() bool {
	return m != NormalizationMetrics{}
}

// NormalizeMatrix coerces arbitrary row data to an exact GridRows x
// GridCols tile grid: short rows and grids pad with empty, long ones
// truncate, unknown values normalize to empty. It never rejects input.
func NormalizeMatrix(rows [][]int) ([][]Tile, NormalizationMetrics) {
	var m NormalizationMetrics
	grid := make([][]Tile, GridRows)
	for r := 0; r < GridRows; r++ {
		grid[r] = make([]Tile, GridCols)
		if r >= len(rows) {
			m.PaddedRows++
			continue
		}
		row := rows[r]
		if len(row) < GridCols {
			m.PaddedCells += GridCols - len(row)
		} else if len(row) > GridCols {
			m.TruncatedCells += len(row) - GridCols
		}
		for c := 0; c < GridCols && c < len(row); c++ {
			if !known(row[c]) {
				m.UnknownCells++
				continue
			}
			grid[r][c] = Tile(row[c])
		}
	}
	if len(rows) > GridRows {
		m.TruncatedRows = len(rows) - GridRows
		for _, row := range rows[GridRows:] {
			m.TruncatedCells += len(row)
		}
	}
	return grid, m
}
