package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bubbles-vole/snake-game-project/internal/config"
	"github.com/bubbles-vole/snake-game-project/internal/core"
	"github.com/bubbles-vole/snake-game-project/internal/crashlog"
	"github.com/bubbles-vole/snake-game-project/internal/leaderboard"
	"github.com/bubbles-vole/snake-game-project/internal/platform/tui"
)

// crashDir receives a report when a session panics.
const crashDir = "~/.snake/crashes"

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game session in the current terminal.

Without --difficulty a picker menu opens first; after each round the
session returns to the picker.

Controls:
  Arrows/WASD  - Steer
  Q/Esc        - Leave the round
  Ctrl+C       - Quit

Difficulty tiers:
  easy    - 600ms pace, no obstacles
  medium  - 300ms pace, 5 obstacles
  hard    - 200ms pace, 10 obstacles
  insane  - 50ms pace, 15 obstacles

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-tiers.yaml
  snake play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu and start on this tier: easy, medium, hard, insane")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Parse the requested tier before touching the terminal
	var start config.Difficulty
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		start = d
	}

	// Load tier settings
	tiers, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Debug logs go to a file so they cannot corrupt the screen
	if flagLogPath != "" {
		f, logErr := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", logErr)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
		log.SetPrefix("snake")
		log.SetReportTimestamp(true)
	}

	// Size the board to the terminal
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed

	// Open the leaderboard; play continues without one
	var store leaderboard.Store
	fileStore, err := leaderboard.NewFileStore(flagBoardPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
	} else {
		store = fileStore
	}

	collector := &crashlog.Collector{}

	if runErr := tui.Run(tiers, store, collector, crashDir, rt, start); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
