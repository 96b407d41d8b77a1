package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bubbles-vole/snake-game-project/internal/config"
	"github.com/bubbles-vole/snake-game-project/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [tier]",
	Short: "Show the saved top-10 tables",
	Long: `Display the stored top-10 scores, for one difficulty tier or all four.

Examples:
  snake scores
  snake scores insane`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	tiers := config.Difficulties()
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tiers = []config.Difficulty{d}
	}

	store, err := leaderboard.NewFileStore(flagBoardPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}

	for i, d := range tiers {
		if i > 0 {
			fmt.Println()
		}
		printTier(store, d)
	}
}

func printTier(store *leaderboard.FileStore, d config.Difficulty) {
	entries, err := store.Top(d.String(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", strings.ToUpper(d.String()))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'snake play --difficulty %s' to set the first one!\n", d)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-20s  %s\n", "----", "----", "-----")

	// Print entries
	for i, e := range entries {
		fmt.Printf("  %-4d  %-20s  %d\n", i+1, e.Name, e.Score)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", entries[0].Score)
}
