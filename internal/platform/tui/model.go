package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bubbles-vole/snake-game-project/internal/core"
	"github.com/bubbles-vole/snake-game-project/internal/crashlog"
	"github.com/bubbles-vole/snake-game-project/internal/game"
)

// GameModel is the Bubble Tea model for one round of play. It owns the
// engine, polls it on every tick, and publishes snapshots to the crash
// collector.
type GameModel struct {
	game      *game.Game
	screen    *core.Screen
	collector *crashlog.Collector
	keyMapper *KeyMapper
	quitting  bool // ctrl+c: leave the program
	abandoned bool // q/esc mid-round: back to the menu, score discarded
	finished  bool // round over and acknowledged with Enter
}

// NewGameModel creates a model for a freshly constructed round.
func NewGameModel(g *game.Game, collector *crashlog.Collector, width, height int) GameModel {
	return GameModel{
		game:      g,
		screen:    core.NewScreen(width, height),
		collector: collector,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(tickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board keeps its size for the round; drawing clips.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		// q/esc: mid-round this abandons the round; after game over it
		// just leaves the overlay.
		if m.game.Over() {
			m.finished = true
		} else {
			m.abandoned = true
		}
		return m, nil
	}

	if m.game.Over() {
		if action == core.ActionConfirm {
			m.finished = true
		}
		return m, nil
	}

	if action.IsDirection() {
		m.game.ApplyAction(action)
	}
	return m, nil
}

// handleTick advances the round by one poll of the move clock.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Over() {
		return m, nil
	}

	alive := m.game.Advance(time.Now())
	if m.collector != nil {
		m.collector.Set(m.game.Snapshot())
	}
	if !alive {
		// The game-over overlay stays up; Enter moves on.
		return m, nil
	}
	return m, tickCmd(tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current round.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Score returns the round's score.
func (m GameModel) Score() int {
	return m.game.Score()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Abandoned returns true if user left the round before it ended.
func (m GameModel) Abandoned() bool {
	return m.abandoned
}

// Finished returns true once a finished round has been acknowledged.
func (m GameModel) Finished() bool {
	return m.finished
}
