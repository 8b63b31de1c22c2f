// Package tui is a full screen front end for hangman built on Bubble Tea.
// It plays the same rounds as the line console, with the menu and the guess
// field on one screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/menu"
)

type screen int

const (
	menuScreen screen = iota
	roundScreen
)

// StageRenderer draws the gallows for the current round.
type StageRenderer interface {
	Render(mistakes int, mask string) string
}

// Model is the Bubble Tea model for a hangman session.
type Model struct {
	words  menu.WordSource
	stage  StageRenderer
	logger *log.Logger

	guessInput textinput.Model

	screen   screen
	round    game.Round
	notice   string // feedback on the last guess
	message  string // result of the last finished round
	tally    menu.Tally
	err      error
	quitting bool
}

// NewModel creates a model showing the menu.
func NewModel(words menu.WordSource, stage StageRenderer, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "a letter"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	return &Model{
		words:      words,
		stage:      stage,
		logger:     logger.WithPrefix("tui"),
		guessInput: ti,
		screen:     menuScreen,
	}
}

// Err returns the failure that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Tally returns rounds won and lost in this session.
func (m *Model) Tally() menu.Tally {
	return m.tally
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	if m.screen == menuScreen {
		return m.updateMenu(key)
	}
	return m.updateRound(key)
}

func (m *Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case menu.StartCommand:
		word, err := m.words.NextWord()
		if err != nil {
			m.logger.Error("Failed to pick a word", "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.round = game.NewRound(word)
		m.notice = ""
		m.message = ""
		m.screen = roundScreen
		m.guessInput.SetValue("")
		return m, m.guessInput.Focus()
	case menu.ExitCommand:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateRound(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEnter {
		m.submitGuess(m.guessInput.Value())
		m.guessInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.guessInput, cmd = m.guessInput.Update(key)
	return m, cmd
}

func (m *Model) submitGuess(guess string) {
	var verdict game.Verdict
	m.round, verdict = m.round.Guess(guess)
	m.logger.Debug("Guess", "verdict", verdict, "mistakes", m.round.Mistakes())

	switch verdict {
	case game.Invalid:
		m.notice = game.WrongGuess
	case game.Repeat:
		m.notice = game.AlreadyGuessed
	default:
		m.notice = ""
	}

	if !m.round.Done() {
		return
	}

	result := game.RoundResult{
		Outcome:  m.round.Outcome(),
		Word:     m.round.Word(),
		Mistakes: m.round.Mistakes(),
	}
	if result.Outcome == game.Won {
		m.tally.Won++
	} else {
		m.tally.Lost++
	}
	m.logger.Info("Round finished", "outcome", result.Outcome, "mistakes", result.Mistakes)

	m.message = result.Message()
	m.notice = ""
	m.screen = menuScreen
	m.guessInput.Blur()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Hangman"))
	b.WriteString("\n\n")

	switch m.screen {
	case roundScreen:
		b.WriteString(StagePaneStyle.Render(strings.TrimSuffix(m.stage.Render(m.round.Mistakes(), m.round.Mask()), "\n")))
		b.WriteString("\n")
		b.WriteString(m.guessInput.View())
		b.WriteString("\n")
		if m.notice != "" {
			b.WriteString(WarningStyle.Render(m.notice))
			b.WriteString("\n")
		}
		b.WriteString(InfoStyle.Render("Enter to guess • Esc to quit"))
	default:
		if m.message != "" {
			style := SuccessStyle
			if m.round.Outcome() == game.Lost {
				style = ErrorStyle
			}
			b.WriteString(style.Render(m.message))
			b.WriteString("\n\n")
		}
		b.WriteString(menu.Prompt)
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Won %d • Lost %d", m.tally.Won, m.tally.Lost)))
	}
	b.WriteString("\n")
	return b.String()
}
