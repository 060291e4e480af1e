package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/storage"
)

var flagBestReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Display the best score stored in the database.

Examples:
  defender best
  defender best --reset
  defender best --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagBestReset, "reset", false, "Clear the stored best score")
}

func runBest(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening best score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBestReset {
		if err := store.ClearBestScore(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing best score: %v\n", err)
			os.Exit(1)
		}
		logger.Info("best score cleared", "path", store.Path())
		fmt.Println("Best score cleared.")
		return
	}

	best, err := store.BestScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}

	if best == 0 {
		fmt.Println("No best score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' to set the first one!")
		return
	}
	fmt.Printf("Best score: %d\n", best)
}
