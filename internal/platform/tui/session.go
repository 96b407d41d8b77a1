package tui

import (
	"fmt"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/bubbles-vole/snake-game-project/internal/config"
	"github.com/bubbles-vole/snake-game-project/internal/core"
	"github.com/bubbles-vole/snake-game-project/internal/crashlog"
	"github.com/bubbles-vole/snake-game-project/internal/game"
	"github.com/bubbles-vole/snake-game-project/internal/leaderboard"
)

// sessionState names the screen the session is on.
type sessionState int

const (
	stateMenu sessionState = iota
	statePlaying
	stateNameEntry
	stateScores
)

// SessionModel manages the full session flow: difficulty menu -> round ->
// name entry (when the score qualifies) -> score table -> menu. It is the
// top-level model for both local play and SSH sessions.
type SessionModel struct {
	tiers     config.Config
	store     leaderboard.Store // may be nil, play continues without saving
	collector *crashlog.Collector
	username  string
	seed      int64 // 0 picks a time seed per round
	width     int
	height    int

	state      sessionState
	menu       MenuModel
	gameModel  *GameModel
	entry      *NameEntryModel
	board      *ScoreboardModel
	difficulty config.Difficulty // tier of the current or last round
	quitting   bool
}

// NewSessionModel creates a session. A non-empty start difficulty skips
// the menu and drops straight into a round.
func NewSessionModel(tiers config.Config, store leaderboard.Store, collector *crashlog.Collector, rt core.RuntimeConfig, username string, start config.Difficulty) SessionModel {
	m := SessionModel{
		tiers:     tiers,
		store:     store,
		collector: collector,
		username:  username,
		seed:      rt.Seed,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		menu:      NewMenuModel(tiers, rt.ScreenW, rt.ScreenH),
	}
	if start != "" {
		m, _ = m.startRound(start)
	}
	return m
}

// Init initializes whichever screen the session starts on.
func (m SessionModel) Init() tea.Cmd {
	if m.state == statePlaying && m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track the terminal size; the active screen also sees the message.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.state {
	case statePlaying:
		return m.updateGame(msg)
	case stateNameEntry:
		return m.updateEntry(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates on the difficulty menu.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		return m.openScores()
	}

	if d, ok := m.menu.Selected(); ok {
		return m.startRound(d)
	}

	return m, cmd
}

// startRound builds a fresh game for the tier and switches to play.
func (m SessionModel) startRound(d config.Difficulty) (SessionModel, tea.Cmd) {
	tier := m.tiers.Tier(d)
	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(game.Config{
		Width:        m.width,
		Height:       m.height,
		Obstacles:    tier.Obstacles,
		MoveInterval: tier.MoveInterval(),
		Difficulty:   d.String(),
		Seed:         seed,
	}, time.Now())
	if err != nil {
		// Board too small or too crowded: stay on the menu and say why.
		log.Debug("round not started", "difficulty", d.String(), "error", err)
		menu := NewMenuModel(m.tiers, m.width, m.height)
		menu.SetNotice(fmt.Sprintf("Cannot start round: %v", err))
		m.menu = menu
		m.state = stateMenu
		return m, nil
	}

	log.Debug("round started",
		"difficulty", d.String(),
		"board", fmt.Sprintf("%dx%d", m.width, m.height),
		"seed", seed,
	)

	gameModel := NewGameModel(g, m.collector, m.width, m.height)
	m.gameModel = &gameModel
	m.difficulty = d
	m.state = statePlaying
	return m, gameModel.Init()
}

// updateGame handles updates during a round.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.Abandoned() {
		// Round left early: nothing recorded.
		log.Debug("round abandoned", "difficulty", m.difficulty.String(), "score", m.gameModel.Score())
		m.gameModel = nil
		return m.backToMenu()
	}

	if m.gameModel.Finished() {
		score := m.gameModel.Score()
		log.Debug("round ended", "difficulty", m.difficulty.String(), "score", score)
		m.gameModel = nil
		return m.finishRound(score)
	}

	return m, cmd
}

// finishRound routes a completed round: name entry when the score makes
// the table, otherwise straight to the score table.
func (m SessionModel) finishRound(score int) (SessionModel, tea.Cmd) {
	if m.store != nil {
		qualifies, err := m.store.IsHighScore(m.difficulty.String(), score)
		if err == nil && qualifies {
			entry := NewNameEntryModel(m.difficulty, score, m.username, m.width, m.height)
			m.entry = &entry
			m.state = stateNameEntry
			return m, entry.Init()
		}
	}
	return m.openScores()
}

// updateEntry handles updates on the name prompt.
func (m SessionModel) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	newEntry, cmd := m.entry.Update(msg)
	if entryModel, ok := newEntry.(NameEntryModel); ok {
		m.entry = &entryModel
	}

	if m.entry.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.entry.Done() {
		if name, ok := m.entry.Name(); ok && m.store != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.Record(m.difficulty.String(), name, m.entry.score)
			log.Debug("score recorded", "difficulty", m.difficulty.String(), "name", name, "score", m.entry.score)
		}
		m.entry = nil
		return m.openScores()
	}

	return m, cmd
}

// openScores switches to the score table, opened on the last played tier.
func (m SessionModel) openScores() (SessionModel, tea.Cmd) {
	board := NewScoreboardModel(m.store, m.difficulty, m.width, m.height)
	m.board = &board
	m.state = stateScores
	return m, board.Init()
}

// updateScores handles updates on the score table.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if boardModel, ok := newBoard.(ScoreboardModel); ok {
		m.board = &boardModel
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.GoingBack() {
		m.board = nil
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu resets to a fresh difficulty menu.
func (m SessionModel) backToMenu() (SessionModel, tea.Cmd) {
	m.menu = NewMenuModel(m.tiers, m.width, m.height)
	m.state = stateMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case statePlaying:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case stateNameEntry:
		if m.entry != nil {
			return m.entry.View()
		}
	case stateScores:
		if m.board != nil {
			return m.board.View()
		}
	}
	return m.menu.View()
}

// Run starts a local terminal session and blocks until the player quits.
// A panic anywhere in the session is caught here: the terminal is released,
// a report with the last captured round snapshot goes to crashDir, and the
// panic comes back as an error.
func Run(tiers config.Config, store leaderboard.Store, collector *crashlog.Collector, crashDir string, rt core.RuntimeConfig, start config.Difficulty) (err error) {
	model := NewSessionModel(tiers, store, collector, rt, "", start)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutCatchPanics(),
	)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		//nolint:errcheck // Terminal is torn down on the way out
		p.ReleaseTerminal()
		path, writeErr := crashlog.WriteReport(crashDir, collector.Latest(), r, stack)
		if writeErr != nil {
			err = fmt.Errorf("tui: session panicked: %v (crash report failed: %v)", r, writeErr)
			return
		}
		err = fmt.Errorf("tui: session panicked: %v (report written to %s)", r, path)
	}()

	_, err = p.Run()
	return err
}
