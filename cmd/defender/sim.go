package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/profile"
)

var (
	flagSimDuration time.Duration
	flagSimStep     time.Duration
	flagSimShip     int
	flagSimPersist  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation with an autopilot",
	Long: `Run the game without a terminal UI. An autopilot steers the ship under
the lowest obstacle while the simulation advances in fixed steps. The run
stops at game over or when the duration has elapsed, then prints the result.

The best score is only updated with --persist.

Examples:
  defender sim
  defender sim --duration 5m --step 16ms --seed 42
  defender sim --difficulty hard --persist`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", time.Minute, "Simulated time to run")
	simCmd.Flags().DurationVar(&flagSimStep, "step", 16*time.Millisecond, "Fixed frame delta")
	simCmd.Flags().IntVar(&flagSimShip, "ship", 1, "Ship ID")
	simCmd.Flags().BoolVar(&flagSimPersist, "persist", false, "Save a new best score")
}

// simResult summarizes a headless run.
type simResult struct {
	Final  defender.Snapshot
	Hits   int
	Misses int
}

// simulate drives g with the autopilot until game over or duration elapses.
func simulate(g *defender.Game, cfg config.DefenderConfig, duration, step time.Duration) simResult {
	pilot := defender.Autopilot{Deadzone: cfg.Obstacle.HitRadius / 2}
	in := core.NewInputFrame()

	var res simResult
	for elapsed := time.Duration(0); elapsed < duration; elapsed += step {
		in.Clear()
		pilot.Steer(g.Snapshot(), cfg.Field.SpawnY, &in)
		ev := g.Step(in, step)
		res.Hits += ev.Hits
		res.Misses += ev.Misses
		if g.State() != defender.StatePlaying {
			break
		}
	}
	res.Final = g.Snapshot()
	return res
}

func runSim(cmd *cobra.Command, args []string) {
	if flagSimStep <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --step must be positive")
		os.Exit(1)
	}

	logger, closer, cfg := mustSetup()
	defer closer.Close()

	rt := runtimeConfig(0, 0, flagSimStep)
	opts := defender.Options{
		Runtime: rt,
		Logger:  logger,
		Player:  profile.New("", "autopilot", ""),
	}
	if flagSimPersist {
		store, best := openStoreOrWarn(logger)
		if store != nil {
			defer store.Close()
			opts.Saver = store
			opts.BestScore = best
		}
	}

	game := defender.New(cfg, opts)
	if err := game.Start(flagSimShip); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := simulate(game, cfg, flagSimDuration, flagSimStep)
	printSimResult(res, rt.Seed)
	logger.Info("simulation finished", "score", res.Final.Progress.Score, "ticks", res.Final.Tick)
}

func printSimResult(res simResult, seed int64) {
	p := res.Final.Progress
	fmt.Printf("Simulation - %s (seed %d)\n", res.Final.Ship.Name, seed)
	fmt.Println()
	fmt.Printf("  %-12s %v\n", "Time", res.Final.Clock.Round(time.Millisecond))
	fmt.Printf("  %-12s %d\n", "Ticks", res.Final.Tick)
	fmt.Printf("  %-12s %s\n", "State", res.Final.State)
	fmt.Printf("  %-12s %d\n", "Score", p.Score)
	fmt.Printf("  %-12s %d\n", "Level", p.Level)
	fmt.Printf("  %-12s %d\n", "Lives", p.Lives)
	fmt.Printf("  %-12s %d\n", "Hits", res.Hits)
	fmt.Printf("  %-12s %d\n", "Misses", res.Misses)
	fmt.Printf("  %-12s %d\n", "Best", p.HighScore)
}
