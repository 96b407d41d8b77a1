// snake is a terminal Snake game with per-difficulty leaderboards.
//
// Usage:
//
//	snake play               - Play in the local terminal
//	snake scores [tier]      - Show the saved top-10 tables
//	snake serve              - Serve the game over SSH
//
// Global flags:
//
//	--board <path>   - Leaderboard JSON path (default: ~/.snake/leaderboard.json)
//	--config <path>  - Custom difficulty config YAML
//	--seed <value>   - RNG seed for reproducible rounds
//	--log <path>     - Debug log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagBoardPath  string
	flagConfigPath string
	flagSeed       int64
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic, in your terminal",
	Long: `Snake is a terminal take on the classic: steer the snake, eat food,
dodge the walls and your own tail, and climb the per-difficulty leaderboard.

Available commands:
  play     - Play in the local terminal
  scores   - View the saved top-10 tables
  serve    - Start an SSH server for remote play

Examples:
  snake play
  snake play --difficulty hard
  snake scores insane
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagBoardPath, "board", "~/.snake/leaderboard.json", "Path to the leaderboard JSON file")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a custom difficulty config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
