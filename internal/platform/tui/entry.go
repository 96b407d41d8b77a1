package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bubbles-vole/snake-game-project/internal/config"
	"github.com/bubbles-vole/snake-game-project/internal/leaderboard"
)

// NameEntryModel is the Bubble Tea model for the high score name prompt.
type NameEntryModel struct {
	input      textinput.Model
	difficulty config.Difficulty
	score      int
	width      int
	height     int
	errMsg     string
	name       string // Normalized name once submitted
	done       bool
	skipped    bool
	quitting   bool
}

// NewNameEntryModel creates a name prompt for a qualifying score. The
// initial value seeds the input (SSH sessions pass the login user).
func NewNameEntryModel(difficulty config.Difficulty, score int, initial string, width, height int) NameEntryModel {
	ti := textinput.New()
	ti.Placeholder = "YOUR NAME"
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen + 2
	ti.Prompt = "> "
	if seed := seedName(initial); seed != "" {
		ti.SetValue(seed)
	}
	ti.Focus()

	return NameEntryModel{
		input:      ti,
		difficulty: difficulty,
		score:      score,
		width:      width,
		height:     height,
	}
}

// seedName strips an initial value down to leaderboard characters.
func seedName(initial string) string {
	var b strings.Builder
	for _, r := range initial {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == leaderboard.MaxNameLen {
			break
		}
	}
	return b.String()
}

// Init initializes the name prompt.
func (m NameEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the name prompt.
func (m NameEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			// Skipping keeps the score off the table.
			m.skipped = true
			m.done = true
			return m, nil

		case "enter":
			name, err := leaderboard.NormalizeName(m.input.Value())
			if err != nil {
				m.errMsg = "Letters and digits only, 1 to 20 characters"
				return m, nil
			}
			m.name = name
			m.done = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the name prompt.
func (m NameEntryModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(centerText("NEW HIGH SCORE", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s: %d points", strings.ToUpper(m.difficulty.String()), m.score), m.width))
	b.WriteString("\n\n")
	// The input view carries ANSI codes, so pad from its plain width.
	if pad := (m.width - leaderboard.MaxNameLen - 4) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(centerText(m.errMsg, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Save  |  Esc: Skip", m.width))
	b.WriteString("\n")

	return b.String()
}

// Done reports whether the prompt finished, by submit or skip.
func (m NameEntryModel) Done() bool {
	return m.done
}

// Name returns the normalized name, or empty if the prompt was skipped.
func (m NameEntryModel) Name() (string, bool) {
	if m.skipped {
		return "", false
	}
	return m.name, m.name != ""
}

// IsQuitting returns true if user requested to quit.
func (m NameEntryModel) IsQuitting() bool {
	return m.quitting
}
