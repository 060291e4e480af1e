package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
	"github.com/vovakirdan/space-defender/internal/profile"
	"github.com/vovakirdan/space-defender/internal/registry"
)

var (
	flagShip      int
	flagPlayer    string
	flagFixedStep time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a ship and play",
	Long: `Open the ship menu and play.

Controls:
  Left/Right, A/D  - Move the ship
  Enter            - Select ship
  P/Esc            - Pause and resume
  R                - Restart (paused or after game over)
  B                - Back to the ship menu
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower obstacles and longer spawn intervals
  normal - Default settings
  hard   - Faster obstacles, shorter minimum interval, fewer lives
  fixed  - No progression, level 1 pace for the whole run

Examples:
  defender play
  defender play --ship 3
  defender play --player ada --difficulty easy
  defender play --fixed-step 16ms`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagShip, "ship", 0, "Start directly with this ship ID (skips the menu)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (default: OS user)")
	playCmd.Flags().DurationVar(&flagFixedStep, "fixed-step", 0, "Use a constant frame delta instead of wall time")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagShip != 0 && !registry.Exists(flagShip) {
		fmt.Fprintf(os.Stderr, "Error: unknown ship %d\n", flagShip)
		fmt.Fprintln(os.Stderr, "Run 'defender ships' to see available ships.")
		os.Exit(1)
	}

	logger, closer, cfg := mustSetup()
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := runtimeConfig(width, height, flagFixedStep)

	player := profile.FromOS()
	if flagPlayer != "" {
		player = profile.New("", flagPlayer, "")
	}

	store, best := openStoreOrWarn(logger)
	opts := defender.Options{
		Runtime:   rt,
		BestScore: best,
		Logger:    logger,
		Player:    player,
	}
	if store != nil {
		defer store.Close()
		opts.Saver = store
	}

	game := defender.New(cfg, opts)
	if flagShip != 0 {
		game.Select(flagShip)
		if err := game.Start(flagShip); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Info("session started", "player", player.DisplayName(), "seed", rt.Seed, "fps", rt.TickRate)

	if err := tui.Run(game, rt, cfg.Input.HoldTimeout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	p := game.Progress()
	logger.Info("session ended", "score", p.Score, "best", p.HighScore)
}
