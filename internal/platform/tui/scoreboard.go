package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bubbles-vole/snake-game-project/internal/config"
	"github.com/bubbles-vole/snake-game-project/internal/leaderboard"
)

// tableDepth is how many rows the score table shows per tier.
const tableDepth = 10

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextTier key.Binding
	PrevTier key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTier, k.PrevTier, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTier, k.PrevTier},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTier: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/right", "next tier"),
		),
		PrevTier: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/left", "prev tier"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the per-tier score tables.
type ScoreboardModel struct {
	store      leaderboard.Store
	tiers      []config.Difficulty
	tierCursor int
	entries    []leaderboard.Entry
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard showing the given tier first.
func NewScoreboardModel(store leaderboard.Store, start config.Difficulty, width, height int) ScoreboardModel {
	tiers := config.Difficulties()
	cursor := 0
	for i, d := range tiers {
		if d == start {
			cursor = i
		}
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:      store,
		tiers:      tiers,
		tierCursor: cursor,
		keys:       DefaultScoreboardKeyMap(),
		help:       h,
		width:      width,
		height:     height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: leaderboard.MaxNameLen + 2},
		{Title: "Score", Width: 10},
	}

	height := m.height - 8 // Leave room for title, tabs, help, and margins
	if height < 3 {
		height = 3
	}
	if height > tableDepth+1 {
		height = tableDepth + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads the table for the current tier.
func (m *ScoreboardModel) loadScores() {
	m.entries = nil
	m.loadErr = nil

	if m.store != nil {
		entries, err := m.store.Top(m.tiers[m.tierCursor].String(), tableDepth)
		if err != nil {
			m.loadErr = err
		} else {
			m.entries = entries
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTier):
			m.tierCursor = (m.tierCursor + 1) % len(m.tiers)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevTier):
			m.tierCursor--
			if m.tierCursor < 0 {
				m.tierCursor = len(m.tiers) - 1
			}
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadScores()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderTierTabs()))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(centerText("Scores unavailable", m.width))
		b.WriteString("\n")
	case len(m.entries) == 0:
		b.WriteString(centerText("No scores yet", m.width))
		b.WriteString("\n")
	default:
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpStyle.Render(m.help.View(m.keys))))

	return b.String()
}

// renderTierTabs renders the difficulty labels with the active one marked.
func (m ScoreboardModel) renderTierTabs() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Padding(0, 1)

	parts := make([]string, len(m.tiers))
	for i, d := range m.tiers {
		label := strings.ToUpper(d.String())
		if i == m.tierCursor {
			parts[i] = activeStyle.Render(label)
		} else {
			parts[i] = inactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

// IsQuitting returns true if user requested to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// GoingBack returns true if user pressed back (not quit).
func (m ScoreboardModel) GoingBack() bool {
	return m.goingBack
}
