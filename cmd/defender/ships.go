package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/registry"
)

var shipsCmd = &cobra.Command{
	Use:   "ships",
	Short: "List available ships",
	Long:  `Display the ships you can pick in the menu or with 'defender play --ship'.`,
	Run:   runShips,
}

func runShips(cmd *cobra.Command, args []string) {
	ships := registry.List()

	if len(ships) == 0 {
		fmt.Println("No ships registered.")
		return
	}

	fmt.Println("Available ships:")
	fmt.Println()
	for _, s := range ships {
		fmt.Printf("  %d  /%c\\  %-10s %s\n", s.ID, s.Glyph, s.Name, s.Color)
	}
	fmt.Println()
	fmt.Println("Use 'defender play --ship <id>' to start with a ship.")
}
