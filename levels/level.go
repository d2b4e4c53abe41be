package levels

import (
	"fmt"
	"io/fs"
	"log"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/brickbreaker/common"
)

// HazardSpawn schedules one roaming hazard: it enters the arena at the
// cell's center after Delay elapsed time-units.
type HazardSpawn struct {
	Row   int     `yaml:"row"`
	Col   int     `yaml:"col"`
	Delay float64 `yaml:"delay"`
}

// Definition is one level record as authored in yaml. Grid and Metrics are
// derived from the raw Matrix by LoadDefinition.
type Definition struct {
	Number      int           `yaml:"number"`
	Name        string        `yaml:"name,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Author      string        `yaml:"author,omitempty"`
	Gravity     *[3]float64   `yaml:"gravity,omitempty"`
	Matrix      [][]int       `yaml:"matrix"`
	Hazards     []HazardSpawn `yaml:"hazards,omitempty"`

	Grid    [][]Tile             `yaml:"-"`
	Metrics NormalizationMetrics `yaml:"-"`
}

// DefaultGravity is the level's starting gravity. An absent gravity field
// means the zero vector.
func (d *Definition) DefaultGravity() common.Vec3 {
	if d.Gravity == nil {
		return common.Vec3{}
	}
	return common.Vec3{X: d.Gravity[0], Y: d.Gravity[1], Z: d.Gravity[2]}
}

// Validate checks the authored fields. Matrix irregularities are not
// errors; they are repaired by normalization.
func (d *Definition) Validate() error {
	if d.Number < 1 {
		return fmt.Errorf("levels: level number %d: must be >= 1", d.Number)
	}
	if g := d.DefaultGravity(); !ValidGravity(g) {
		return fmt.Errorf("levels: level %d: default gravity %+v out of bounds", d.Number, g)
	}
	for i, h := range d.Hazards {
		if h.Row < 0 || h.Row >= GridRows || h.Col < 0 || h.Col >= GridCols {
			return fmt.Errorf("levels: level %d: hazard %d: cell (%d,%d) outside grid", d.Number, i, h.Row, h.Col)
		}
		if h.Delay < 0 {
			return fmt.Errorf("levels: level %d: hazard %d: negative delay %v", d.Number, i, h.Delay)
		}
	}
	return nil
}

// Spawns are the world-space centers the level places the paddle and ball
// at. Missing spawn tiles fall back to the arena's bottom center.
type Spawns struct {
	PaddleX float64
	PaddleY float64
	BallX   float64
	BallY   float64
}

// Spawns scans the grid for the paddle and ball spawn tiles, first
// occurrence in row-major order.
func (d *Definition) Spawns() Spawns {
	_, paddleY := CellCenter(18, 0)
	_, ballY := CellCenter(16, 0)
	s := Spawns{
		PaddleX: ArenaWidth / 2,
		PaddleY: paddleY,
		BallX:   ArenaWidth / 2,
		BallY:   ballY,
	}
	paddleFound, ballFound := false, false
	for r, row := range d.Grid {
		for c, t := range row {
			switch {
			case t == TilePaddleSpawn && !paddleFound:
				s.PaddleX, s.PaddleY = CellCenter(r, c)
				paddleFound = true
			case t == TileBallSpawn && !ballFound:
				s.BallX, s.BallY = CellCenter(r, c)
				ballFound = true
			}
		}
	}
	return s
}

// LoadSpec decodes one yaml document from fsys into T.
func LoadSpec[T any](fsys fs.FS, name string) (T, error) {
	var zero T
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return zero, fmt.Errorf("levels: load %s: %w", name, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

// LoadDefinition reads one level file and normalizes its grid. Matrix
// irregularities are repaired and warned about, never rejected.
func LoadDefinition(fsys fs.FS, name string) (*Definition, error) {
	def, err := LoadSpec[Definition](fsys, name)
	if err != nil {
		return nil, err
	}
	def.Grid, def.Metrics = NormalizeMatrix(def.Matrix)
	if def.Metrics.Dirty() {
		log.Printf("LevelLoader: normalized %s rows+%d/-%d cells+%d/-%d unknown=%d",
			name, def.Metrics.PaddedRows, def.Metrics.TruncatedRows,
			def.Metrics.PaddedCells, def.Metrics.TruncatedCells, def.Metrics.UnknownCells)
	}
	if g := def.DefaultGravity(); !ValidGravity(g) {
		log.Printf("LevelLoader: level %d: default gravity %+v out of bounds, using zero", def.Number, g)
		def.Gravity = &[3]float64{}
	}
	return &def, nil
}

// Catalog is the ordered level set for a session.
type Catalog struct {
	defs []*Definition
}

// LoadCatalog reads every *.yaml level in fsys and orders the catalog by
// level number.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: glob: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("levels: no level files found")
	}
	sort.Strings(names)

	cat := &Catalog{}
	for _, name := range names {
		def, err := LoadDefinition(fsys, name)
		if err != nil {
			return nil, err
		}
		cat.defs = append(cat.defs, def)
	}
	sort.SliceStable(cat.defs, func(i, j int) bool {
		return cat.defs[i].Number < cat.defs[j].Number
	})
	return cat, nil
}

func (c *Catalog) Len() int { return len(c.defs) }

// Definitions returns the catalog in play order.
func (c *Catalog) Definitions() []*Definition { return c.defs }

// First returns the opening level, nil for an empty catalog.
func (c *Catalog) First() *Definition {
	if len(c.defs) == 0 {
		return nil
	}
	return c.defs[0]
}

// ByNumber finds a level by its authored number.
func (c *Catalog) ByNumber(n int) (*Definition, bool) {
	for _, d := range c.defs {
		if d.Number == n {
			return d, true
		}
	}
	return nil, false
}

func (c *Catalog) indexOf(n int) int {
	for i, d := range c.defs {
		if d.Number == n {
			return i
		}
	}
	return -1
}

// Next returns the level after current, wrapping past the last back to the
// first. An unknown current yields the first level.
func (c *Catalog) Next(current int) *Definition {
	if len(c.defs) == 0 {
		return nil
	}
	i := c.indexOf(current)
	if i < 0 {
		return c.defs[0]
	}
	return c.defs[(i+1)%len(c.defs)]
}

// Prev returns the level before current, wrapping past the first to the
// last.
func (c *Catalog) Prev(current int) *Definition {
	if len(c.defs) == 0 {
		return nil
	}
	i := c.indexOf(current)
	if i < 0 {
		return c.defs[0]
	}
	return c.defs[(i-1+len(c.defs))%len(c.defs)]
}
