package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	brickbreaker "github.com/milk9111/brickbreaker"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/levels"
)

var (
	flagTrigger string
	flagPhysics string
	flagFor     time.Duration
	flagCheat   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the core headless, logging notifications",
	Long: `Run steps the simulation at the configured tick rate and logs every
notification the core publishes: brick destructions, gravity changes, life
losses, milestones, level completions.

With --levels-dir the directory is watched and edited level files reload
live. With --trigger the named file is watched; writing a level number to it
switches levels (cheat mode is enabled automatically for this).

Examples:
  brickbreaker run
  brickbreaker run --for 2m --seed 7
  brickbreaker run --levels-dir ./levels --trigger ./next-level`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagTrigger, "trigger", "", "Watch this file; its content names the level to switch to")
	runCmd.Flags().StringVar(&flagPhysics, "physics", "", "Physics tuning yaml (default: embedded tuning)")
	runCmd.Flags().DurationVar(&flagFor, "for", 0, "Stop after this long (0 = run until interrupted)")
	runCmd.Flags().BoolVar(&flagCheat, "cheat", false, "Start with cheat mode enabled")
}

func runRun(cmd *cobra.Command, args []string) {
	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadPhysicsConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := chooseSeed()
	game, err := brickbreaker.NewGame(catalog, cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagCheat || flagTrigger != "" {
		if !flagCheat {
			log.Printf("Run: enabling cheat mode for trigger control")
		}
		game.ToggleCheat()
	}

	var levelEvents chan string
	var levelErrs chan error
	if flagLevelsDir != "" {
		watcher, err := levels.NewWatcher(flagLevelsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
		levelEvents = watcher.Events
		levelErrs = watcher.Errors
	}

	var triggers chan int
	var triggerErrs chan error
	if flagTrigger != "" {
		watcher, err := levels.NewTriggerWatcher(flagTrigger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
		triggers = watcher.Requests
		triggerErrs = watcher.Errors
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var deadline <-chan time.Time
	if flagFor > 0 {
		timer := time.NewTimer(flagFor)
		defer timer.Stop()
		deadline = timer.C
	}

	dt := 1.0 / float64(flagTickRate)
	ticker := time.NewTicker(time.Second / time.Duration(flagTickRate))
	defer ticker.Stop()
	status := time.NewTicker(5 * time.Second)
	defer status.Stop()

	log.Printf("Run: %d levels, seed=%d, tick=%d", catalog.Len(), seed, flagTickRate)
	for {
		select {
		case <-ctx.Done():
			log.Printf("Run: interrupted")
			return
		case <-deadline:
			log.Printf("Run: done, level=%d score=%d lives=%d", game.LevelNumber(), game.Score(), game.Lives())
			return
		case <-ticker.C:
			game.Step(dt)
			for _, evt := range game.Notifications() {
				log.Printf("Run: %s %+v", evt.Type, evt.Data)
			}
		case <-status.C:
			g := game.CurrentGravity()
			log.Printf("Run: level=%d score=%d lives=%d bricks=%d gravity=(%.1f, %.1f, %.1f)",
				game.LevelNumber(), game.Score(), game.Lives(), game.BricksRemaining(), g.X, g.Y, g.Z)
		case path, ok := <-levelEvents:
			if !ok {
				levelEvents = nil
				continue
			}
			reloaded, err := levels.LoadCatalog(os.DirFS(flagLevelsDir))
			if err != nil {
				log.Printf("Run: reload after %s: %v", path, err)
				continue
			}
			if err := game.ReplaceCatalog(reloaded); err != nil {
				log.Printf("Run: reload after %s: %v", path, err)
				continue
			}
			log.Printf("Run: reloaded %d levels after %s", reloaded.Len(), filepath.Base(path))
		case err, ok := <-levelErrs:
			if !ok {
				levelErrs = nil
				continue
			}
			log.Printf("Run: level watcher: %v", err)
		case n, ok := <-triggers:
			if !ok {
				triggers = nil
				continue
			}
			log.Printf("Run: trigger requests level %d", n)
			game.RequestLevel(n)
		case err, ok := <-triggerErrs:
			if !ok {
				triggerErrs = nil
				continue
			}
			log.Printf("Run: trigger watcher: %v", err)
		}
	}
}

func loadPhysicsConfig() (ecs.PhysicsConfig, error) {
	if flagPhysics == "" {
		return brickbreaker.EmbeddedPhysicsConfig()
	}
	abs, err := filepath.Abs(flagPhysics)
	if err != nil {
		return ecs.PhysicsConfig{}, fmt.Errorf("physics config %s: %w", flagPhysics, err)
	}
	return ecs.LoadPhysicsConfig(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}
