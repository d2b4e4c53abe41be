// brickbreaker drives the level and gravity core headless.
//
// Usage:
//
//	brickbreaker run        - Run the simulation, logging notifications
//	brickbreaker validate   - Validate level files
//	brickbreaker dump       - Print the level catalog
//
// Global flags:
//
//	--levels-dir <dir>  - Load levels from a directory instead of the embedded set
//	--tick <rate>       - Simulation steps per second (default: 60)
//	--seed <value>      - RNG seed (0 = time-based)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/milk9111/brickbreaker/levels"
)

var (
	flagLevelsDir string
	flagTickRate  int
	flagSeed      int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick breaker level and gravity core",
	Long: `brickbreaker steps the arcade core without a display: levels load,
bricks fall, gravity shifts, lives drain, and every notification the core
publishes is logged.

Examples:
  brickbreaker run
  brickbreaker run --levels-dir ./levels --trigger ./next-level
  brickbreaker validate my-level.yaml
  brickbreaker dump`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Load levels from this directory instead of the embedded set")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick", 60, "Simulation steps per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(dumpCmd)
}

func loadCatalog() (*levels.Catalog, error) {
	if flagLevelsDir == "" {
		return levels.DefaultCatalog()
	}
	return levels.LoadCatalog(os.DirFS(flagLevelsDir))
}

func chooseSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
