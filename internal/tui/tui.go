// Package tui implements the interactive Bubble Tea interface: a viewport
// with the game log above a textinput prompt, with the score in the
// header.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rpsbomb/internal/game"
	"github.com/lox/rpsbomb/rps"
)

// Model is the Bubble Tea model for one game.
type Model struct {
	session *game.Session
	state   rps.GameState
	logger  *log.Logger

	logViewport viewport.Model
	moveInput   textinput.Model

	gameLog  []string
	finished bool
	quitting bool

	width       int
	height      int
	initialized bool
}

// NewModel creates a TUI model and starts a fresh game on the session.
func NewModel(session *game.Session, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "rock, paper, scissors or bomb"
	ti.Focus()
	ti.CharLimit = 60
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	state, welcome := session.Start()

	return &Model{
		session:     session,
		state:       state,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		moveInput:   ti,
		gameLog:     []string{welcome, ""},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		inputHeight := 2
		m.logViewport.Width = msg.Width
		m.logViewport.Height = max(msg.Height-headerHeight-inputHeight, 3)
		m.initialized = true
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.finished {
				m.quitting = true
				return m, tea.Quit
			}
			return m.submitMove()
		}
	}

	var cmd tea.Cmd
	m.moveInput, cmd = m.moveInput.Update(msg)
	return m, cmd
}

func (m *Model) submitMove() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.moveInput.Value())
	m.moveInput.SetValue("")
	if input == "" {
		return m, nil
	}

	m.appendLog(HintStyle.Render("> " + input))

	result, err := m.session.PlayRound(m.state, input)
	if err != nil {
		// Contract violations are bugs; surface them and stop.
		m.logger.Error("round failed", "error", err)
		m.appendLog(ErrorStyle.Render(fmt.Sprintf("internal error: %v", err)))
		m.finished = true
		return m, nil
	}

	m.state = result.State
	m.appendLog(result.Response, "")

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.GameOver {
		m.finished = true
		m.appendLog(HintStyle.Render("press enter to exit"))
	}

	return m, nil
}

func (m *Model) appendLog(lines ...string) {
	m.gameLog = append(m.gameLog, lines...)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logViewport.SetContent(GameLogStyle.Render(strings.Join(m.gameLog, "\n")))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "loading..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		HeaderStyle.Render(" rock · paper · scissors · bomb "),
		"  ",
		ScoreStyle.Render(fmt.Sprintf("You %d - %d Bot", m.state.UserScore, m.state.BotScore)),
	)

	input := m.moveInput.View()
	if m.finished {
		input = VerdictStyle.Render("game finished")
	}

	return header + "\n\n" + m.logViewport.View() + "\n" + input
}

// FinalState returns the state after the program exits, for exit logging.
func (m *Model) FinalState() rps.GameState {
	return m.state
}
