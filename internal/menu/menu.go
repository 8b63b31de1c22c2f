// Package menu runs the top level S/E command loop of a session.
package menu

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/gameerr"
)

// Menu commands and prompt.
const (
	StartCommand = "S"
	ExitCommand  = "E"
	Prompt       = "Press S to start a new round or E to exit"
)

// WordSource supplies the secret word for each round.
type WordSource interface {
	NextWord() (string, error)
}

// RoundPlayer plays one round of a word.
type RoundPlayer interface {
	PlayRound(word string) (game.RoundResult, error)
}

// Console is what the menu needs from the terminal.
type Console interface {
	ReadLine() (string, error)
	WriteLine(s string) error
}

// Tally counts finished rounds for the current session only.
type Tally struct {
	Won  int
	Lost int
}

// Session is one interactive run of the menu.
type Session struct {
	console Console
	words   WordSource
	rounds  RoundPlayer
	logger  *log.Logger
	tally   Tally
}

// NewSession creates a session.
func NewSession(console Console, words WordSource, rounds RoundPlayer, logger *log.Logger) *Session {
	return &Session{
		console: console,
		words:   words,
		rounds:  rounds,
		logger:  logger.WithPrefix("menu"),
	}
}

// Tally returns the rounds won and lost so far.
func (s *Session) Tally() Tally {
	return s.tally
}

// Run shows the menu until the player exits. Unknown commands are ignored.
// Running out of input at the prompt ends the session like E does; any other
// failure is returned.
func (s *Session) Run() error {
	defer func() {
		s.logger.Info("Session ended", "won", s.tally.Won, "lost", s.tally.Lost)
	}()

	for {
		if err := s.console.WriteLine(Prompt); err != nil {
			return err
		}

		cmd, err := s.console.ReadLine()
		if err != nil {
			if gameerr.Is(err, gameerr.InputFailure) && errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed at menu")
				return nil
			}
			return err
		}

		switch cmd {
		case StartCommand:
			if err := s.playRound(); err != nil {
				return err
			}
		case ExitCommand:
			return nil
		default:
			s.logger.Debug("Ignoring menu input", "input", cmd)
		}
	}
}

func (s *Session) playRound() error {
	word, err := s.words.NextWord()
	if err != nil {
		return err
	}

	result, err := s.rounds.PlayRound(word)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case game.Won:
		s.tally.Won++
	case game.Lost:
		s.tally.Lost++
	}

	return s.console.WriteLine(result.Message())
}
