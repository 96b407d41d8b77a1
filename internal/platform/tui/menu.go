package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bubbles-vole/snake-game-project/internal/config"
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	cfg       config.Config
	tiers     []config.Difficulty
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  config.Difficulty // Empty until the player picks a tier
	openBoard bool              // True if user pressed Tab for the score table
	notice    string            // One-line message under the menu (start errors)
}

// NewMenuModel creates a new difficulty menu.
func NewMenuModel(cfg config.Config, width, height int) MenuModel {
	return MenuModel{
		cfg:       cfg,
		tiers:     config.Difficulties(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// SetNotice puts a one-line message under the menu, shown until the next
// round starts.
func (m *MenuModel) SetNotice(notice string) {
	m.notice = notice
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.tiers)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.tiers[m.cursor]

	case MenuActionScoreboard:
		m.openBoard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  S N A K E  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, d := range m.tiers {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		tier := m.cfg.Tier(d)
		line := fmt.Sprintf("%s%-8s %4dms pace, %d obstacles",
			cursor, strings.ToUpper(d.String()), tier.MoveIntervalMS, tier.Obstacles)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// Selected returns the chosen difficulty, or false if none picked yet.
func (m MenuModel) Selected() (config.Difficulty, bool) {
	return m.selected, m.selected != ""
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the score table.
func (m MenuModel) WantsScoreboard() bool {
	return m.openBoard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
