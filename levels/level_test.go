package levels

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefinitionDefaultGravity(t *testing.T) {
	t.Run("absent_means_zero", func(t *testing.T) {
		d := &Definition{Number: 1}
		if g := d.DefaultGravity(); !g.Zero() {
			t.Fatalf("expected zero gravity, got %+v", g)
		}
	})

	t.Run("specified_is_exact", func(t *testing.T) {
		d := &Definition{Number: 1, Gravity: &[3]float64{2, 0, -1.5}}
		g := d.DefaultGravity()
		if g.X != 2 || g.Y != 0 || g.Z != -1.5 {
			t.Fatalf("unexpected gravity %+v", g)
		}
	})
}

func TestDefinitionValidate(t *testing.T) {
	cases := []struct {
		name    string
		def     Definition
		wantErr string
	}{
		{
			name: "valid",
			def:  Definition{Number: 1, Hazards: []HazardSpawn{{Row: 0, Col: 0, Delay: 0}}},
		},
		{
			name:    "number_below_one",
			def:     Definition{Number: 0},
			wantErr: "must be >= 1",
		},
		{
			name:    "gravity_out_of_bounds",
			def:     Definition{Number: 1, Gravity: &[3]float64{GravityComponentLimit + 1, 0, 0}},
			wantErr: "out of bounds",
		},
		{
			name:    "hazard_row_outside_grid",
			def:     Definition{Number: 1, Hazards: []HazardSpawn{{Row: -1, Col: 0}}},
			wantErr: "outside grid",
		},
		{
			name:    "hazard_col_outside_grid",
			def:     Definition{Number: 1, Hazards: []HazardSpawn{{Row: 0, Col: GridCols}}},
			wantErr: "outside grid",
		},
		{
			name:    "hazard_negative_delay",
			def:     Definition{Number: 1, Hazards: []HazardSpawn{{Row: 0, Col: 0, Delay: -0.5}}},
			wantErr: "negative delay",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.def.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestDefinitionSpawns(t *testing.T) {
	t.Run("first_occurrence_wins", func(t *testing.T) {
		grid, _ := NormalizeMatrix(nil)
		grid[3][4] = TilePaddleSpawn
		grid[3][7] = TilePaddleSpawn
		grid[5][2] = TileBallSpawn
		d := &Definition{Number: 1, Grid: grid}

		s := d.Spawns()
		wantPX, wantPY := CellCenter(3, 4)
		if s.PaddleX != wantPX || s.PaddleY != wantPY {
			t.Fatalf("paddle spawn (%v,%v), want (%v,%v)", s.PaddleX, s.PaddleY, wantPX, wantPY)
		}
		wantBX, wantBY := CellCenter(5, 2)
		if s.BallX != wantBX || s.BallY != wantBY {
			t.Fatalf("ball spawn (%v,%v), want (%v,%v)", s.BallX, s.BallY, wantBX, wantBY)
		}
	})

	t.Run("missing_tiles_fall_back", func(t *testing.T) {
		d := &Definition{Number: 1}

		s := d.Spawns()
		if s.PaddleX != ArenaWidth/2 || s.BallX != ArenaWidth/2 {
			t.Fatalf("fallback spawns must center horizontally, got paddle=%v ball=%v", s.PaddleX, s.BallX)
		}
		_, wantPY := CellCenter(18, 0)
		_, wantBY := CellCenter(16, 0)
		if s.PaddleY != wantPY || s.BallY != wantBY {
			t.Fatalf("fallback rows (%v,%v), want (%v,%v)", s.PaddleY, s.BallY, wantPY, wantBY)
		}
		if s.BallY >= s.PaddleY {
			t.Fatalf("ball must spawn above the paddle: ball=%v paddle=%v", s.BallY, s.PaddleY)
		}
	})
}

func TestLoadDefinition(t *testing.T) {
	t.Run("ragged_matrix_normalizes", func(t *testing.T) {
		fsys := fstest.MapFS{
			"ragged.yaml": &fstest.MapFile{Data: []byte(
				"number: 4\n" +
					"name: ragged\n" +
					"matrix:\n" +
					"  - [20, 20]\n" +
					"  - [20, 999]\n",
			)},
		}
		def, err := LoadDefinition(fsys, "ragged.yaml")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if def.Number != 4 || def.Name != "ragged" {
			t.Fatalf("fields lost: %+v", def)
		}
		if len(def.Grid) != GridRows || len(def.Grid[0]) != GridCols {
			t.Fatalf("grid not normalized: %dx%d", len(def.Grid), len(def.Grid[0]))
		}
		if def.Grid[0][0] != TileSimple || def.Grid[1][1] != TileEmpty {
			t.Fatalf("normalization wrong: %v %v", def.Grid[0][0], def.Grid[1][1])
		}
		if !def.Metrics.Dirty() {
			t.Fatalf("expected dirty metrics for ragged matrix")
		}
		if def.Metrics.UnknownCells != 1 {
			t.Fatalf("expected 1 unknown cell, got %d", def.Metrics.UnknownCells)
		}
	})

	t.Run("invalid_default_gravity_zeroes", func(t *testing.T) {
		fsys := fstest.MapFS{
			"heavy.yaml": &fstest.MapFile{Data: []byte(
				"number: 5\n" +
					"gravity: [999, 0, 0]\n" +
					"matrix: []\n",
			)},
		}
		def, err := LoadDefinition(fsys, "heavy.yaml")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if g := def.DefaultGravity(); !g.Zero() {
			t.Fatalf("out-of-bounds default gravity must load as zero, got %+v", g)
		}
	})

	t.Run("missing_file_errors", func(t *testing.T) {
		if _, err := LoadDefinition(fstest.MapFS{}, "nope.yaml"); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("bad_yaml_errors", func(t *testing.T) {
		fsys := fstest.MapFS{
			"bad.yaml": &fstest.MapFile{Data: []byte("matrix: [\n")},
		}
		if _, err := LoadDefinition(fsys, "bad.yaml"); err == nil {
			t.Fatalf("expected error for malformed yaml")
		}
	})
}

func catalogFS() fstest.MapFS {
	// Filenames deliberately disagree with level numbers; the catalog orders
	// by the authored number.
	return fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("number: 3\nmatrix: []\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("number: 1\nmatrix: []\n")},
		"c.yaml": &fstest.MapFile{Data: []byte("number: 2\nmatrix: []\n")},
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("orders_by_level_number", func(t *testing.T) {
		cat, err := LoadCatalog(catalogFS())
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cat.Len() != 3 {
			t.Fatalf("expected 3 levels, got %d", cat.Len())
		}
		for i, want := range []int{1, 2, 3} {
			if got := cat.Definitions()[i].Number; got != want {
				t.Fatalf("position %d: level %d, want %d", i, got, want)
			}
		}
		if cat.First().Number != 1 {
			t.Fatalf("First should be level 1, got %d", cat.First().Number)
		}
	})

	t.Run("empty_dir_errors", func(t *testing.T) {
		if _, err := LoadCatalog(fstest.MapFS{}); err == nil {
			t.Fatalf("expected error for empty catalog")
		}
	})

	t.Run("broken_level_errors", func(t *testing.T) {
		fsys := catalogFS()
		fsys["d.yaml"] = &fstest.MapFile{Data: []byte("matrix: [\n")}
		if _, err := LoadCatalog(fsys); err == nil {
			t.Fatalf("expected error when one level is broken")
		}
	})
}

func TestCatalogNavigation(t *testing.T) {
	cat, err := LoadCatalog(catalogFS())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	cases := []struct {
		name    string
		got     *Definition
		want    int
		wantNil bool
	}{
		{"next_advances", cat.Next(1), 2, false},
		{"next_wraps", cat.Next(3), 1, false},
		{"next_unknown_yields_first", cat.Next(99), 1, false},
		{"prev_steps_back", cat.Prev(2), 1, false},
		{"prev_wraps", cat.Prev(1), 3, false},
		{"prev_unknown_yields_first", cat.Prev(99), 1, false},
		{"empty_next_is_nil", (&Catalog{}).Next(1), 0, true},
		{"empty_first_is_nil", (&Catalog{}).First(), 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.wantNil {
				if c.got != nil {
					t.Fatalf("expected nil, got level %d", c.got.Number)
				}
				return
			}
			if c.got == nil || c.got.Number != c.want {
				t.Fatalf("got %v, want level %d", c.got, c.want)
			}
		})
	}

	t.Run("by_number", func(t *testing.T) {
		if d, ok := cat.ByNumber(2); !ok || d.Number != 2 {
			t.Fatalf("ByNumber(2) = %v, %v", d, ok)
		}
		if _, ok := cat.ByNumber(42); ok {
			t.Fatalf("ByNumber must miss for unknown levels")
		}
	})
}

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("embedded catalog failed to load: %v", err)
	}
	if cat.Len() < 1 {
		t.Fatalf("embedded catalog is empty")
	}
	for i, def := range cat.Definitions() {
		if def.Number != i+1 {
			t.Fatalf("embedded level at position %d has number %d", i, def.Number)
		}
		if err := def.Validate(); err != nil {
			t.Fatalf("embedded level %d invalid: %v", def.Number, err)
		}
		if got := len(def.Grid); got != GridRows {
			t.Fatalf("embedded level %d grid has %d rows", def.Number, got)
		}
	}
}
