package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/milk9111/brickbreaker/levels"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the level catalog",
	Long: `Dump prints every level in the catalog: identity, default gravity,
hazard schedule, and a tile census.

Examples:
  brickbreaker dump
  brickbreaker dump --levels-dir ./levels`,
	Run: runDump,
}

func runDump(cmd *cobra.Command, args []string) {
	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, def := range catalog.Definitions() {
		fmt.Printf("level %d %q", def.Number, def.Name)
		if def.Author != "" {
			fmt.Printf(" by %s", def.Author)
		}
		fmt.Println()
		if def.Description != "" {
			fmt.Printf("  %s\n", def.Description)
		}

		g := def.DefaultGravity()
		fmt.Printf("  gravity (%g, %g, %g)\n", g.X, g.Y, g.Z)

		for _, h := range def.Hazards {
			fmt.Printf("  hazard at (%d, %d) after %gs\n", h.Row, h.Col, h.Delay)
		}

		census := make(map[levels.Tile]int)
		for _, row := range def.Grid {
			for _, t := range row {
				if t != levels.TileEmpty {
					census[t]++
				}
			}
		}
		tiles := make([]levels.Tile, 0, len(census))
		for t := range census {
			tiles = append(tiles, t)
		}
		sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
		for _, t := range tiles {
			fmt.Printf("  %3d x %s\n", census[t], t)
		}
	}
}
