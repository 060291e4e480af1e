// defender is a terminal arcade shooter: steer a ship that fires on its own
// and destroy the obstacles falling from the top of the field.
//
// Usage:
//
//	defender play            - Pick a ship and play
//	defender sim             - Run a headless simulation with an autopilot
//	defender best            - Show or reset the best score
//	defender ships           - List the available ships
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for obstacle positions
//	--db <path>           - Set database path (default: ~/.defender/defender.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Log destination, "-" for stderr
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its ships
	_ "github.com/vovakirdan/space-defender/internal/games/defender"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Space Defender - shoot down falling obstacles in your terminal",
	Long: `Space Defender is a terminal arcade shooter. Your ship fires on its own;
move it left and right to destroy obstacles before they reach the bottom.
Every destroyed obstacle is worth 100 points and every 1000 points raises
the level, which makes obstacles spawn faster and fall quicker.

Available commands:
  play     - Pick a ship and play
  sim      - Run a headless simulation
  best     - Show or reset the best score
  ships    - List the available ships

Examples:
  defender play
  defender play --ship 2 --difficulty hard
  defender sim --duration 2m --step 16ms
  defender best --reset`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.defender/defender.db", "Path to best score database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.defender/defender.log", `Log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(shipsCmd)
}
