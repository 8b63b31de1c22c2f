package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Messages shown to the player during a round.
const (
	GuessPrompt    = "Enter a letter:"
	WrongGuess     = "Wrong guess, enter a single letter"
	AlreadyGuessed = "Letter already guessed"
)

// LineIO is the console a round is played on.
type LineIO interface {
	ReadLine() (string, error)
	WriteLine(s string) error
	Write(s string) error
}

// StageRenderer draws the gallows and status for the current state.
type StageRenderer interface {
	Render(mistakes int, mask string) string
}

// Engine runs rounds against a console.
type Engine struct {
	io     LineIO
	stage  StageRenderer
	clock  quartz.Clock
	logger *log.Logger
}

// NewEngine creates a round engine.
func NewEngine(io LineIO, stage StageRenderer, clock quartz.Clock, logger *log.Logger) *Engine {
	return &Engine{
		io:     io,
		stage:  stage,
		clock:  clock,
		logger: logger.WithPrefix("engine"),
	}
}

// RoundResult is what a finished round reports back to the menu.
type RoundResult struct {
	Outcome  Outcome
	Word     string
	Mistakes int
	Guesses  int
	Duration time.Duration
}

// Message is the line that discloses the word to the player.
func (r RoundResult) Message() string {
	if r.Outcome == Lost {
		return fmt.Sprintf("You lost, mystery word is %s", r.Word)
	}
	return fmt.Sprintf("That's right, mystery word is %s", r.Word)
}

// PlayRound plays word to completion. The end condition is checked before
// each guess, so the last stage shown is the one in effect before the
// deciding guess. Console failures end the round immediately.
func (e *Engine) PlayRound(word string) (RoundResult, error) {
	start := e.clock.Now()
	round := NewRound(word)
	guesses := 0

	e.logger.Info("Starting round", "length", len([]rune(word)))

	for !round.Done() {
		if err := e.io.Write(e.stage.Render(round.Mistakes(), round.Mask())); err != nil {
			return RoundResult{}, err
		}
		if err := e.io.WriteLine(GuessPrompt); err != nil {
			return RoundResult{}, err
		}

		guess, err := e.io.ReadLine()
		if err != nil {
			return RoundResult{}, err
		}
		guesses++

		var verdict Verdict
		round, verdict = round.Guess(guess)
		e.logger.Debug("Guess", "verdict", verdict, "mistakes", round.Mistakes())

		switch verdict {
		case Invalid:
			err = e.io.WriteLine(WrongGuess)
		case Repeat:
			err = e.io.WriteLine(AlreadyGuessed)
		}
		if err != nil {
			return RoundResult{}, err
		}
	}

	result := RoundResult{
		Outcome:  round.Outcome(),
		Word:     round.Word(),
		Mistakes: round.Mistakes(),
		Guesses:  guesses,
		Duration: e.clock.Since(start),
	}

	e.logger.Info("Round finished",
		"outcome", result.Outcome,
		"mistakes", result.Mistakes,
		"guesses", result.Guesses,
		"duration", result.Duration)

	return result, nil
}
