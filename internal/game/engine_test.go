package game

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/gameerr"
	"github.com/lox/hangman/internal/stage"
)

// scriptedConsole replays a fixed list of input lines and records output.
// Each read advances the mock clock by one second.
type scriptedConsole struct {
	inputs   []string
	out      strings.Builder
	clock    *quartz.Mock
	failOn   string // fail the first write containing this text
	writeErr error
}

func (c *scriptedConsole) ReadLine() (string, error) {
	if len(c.inputs) == 0 {
		return "", gameerr.New(gameerr.InputFailure, "read line", io.EOF)
	}
	if c.clock != nil {
		c.clock.Advance(time.Second)
	}
	line := c.inputs[0]
	c.inputs = c.inputs[1:]
	return line, nil
}

func (c *scriptedConsole) WriteLine(s string) error {
	return c.Write(s + "\n")
}

func (c *scriptedConsole) Write(s string) error {
	if c.failOn != "" && strings.Contains(s, c.failOn) {
		return gameerr.New(gameerr.OutputFailure, "write", c.writeErr)
	}
	c.out.WriteString(s)
	return nil
}

type plainStage struct{}

func (plainStage) Render(mistakes int, mask string) string {
	return stage.Render(mistakes, mask)
}

func newTestEngine(t *testing.T, inputs ...string) (*Engine, *scriptedConsole) {
	t.Helper()
	clock := quartz.NewMock(t)
	console := &scriptedConsole{inputs: inputs, clock: clock}
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewEngine(console, plainStage{}, clock, logger), console
}

func TestPlayRoundWin(t *testing.T) {
	e, console := newTestEngine(t, "h", "a", "n", "g", "m")

	result, err := e.PlayRound("hangman")
	require.NoError(t, err)

	assert.Equal(t, Won, result.Outcome)
	assert.Equal(t, "hangman", result.Word)
	assert.Equal(t, 0, result.Mistakes)
	assert.Equal(t, 5, result.Guesses)
	assert.Equal(t, 5*time.Second, result.Duration)
	assert.Equal(t, "That's right, mystery word is hangman", result.Message())

	out := console.out.String()
	assert.Equal(t, 5, strings.Count(out, GuessPrompt))
	assert.Contains(t, out, "Word: *******")
	assert.Contains(t, out, "Word: hang*an")
	assert.NotContains(t, out, "Mistakes: 1")
}

func TestPlayRoundLoss(t *testing.T) {
	e, console := newTestEngine(t, "x", "y", "z", "q", "w", "e")

	result, err := e.PlayRound("cat")
	require.NoError(t, err)

	assert.Equal(t, Lost, result.Outcome)
	assert.Equal(t, MaxMistakes, result.Mistakes)
	assert.Equal(t, "You lost, mystery word is cat", result.Message())

	// the stage for the sixth mistake is never drawn inside the round
	out := console.out.String()
	assert.Contains(t, out, "Mistakes: 5")
	assert.NotContains(t, out, "Mistakes: 6")
}

func TestPlayRoundNotices(t *testing.T) {
	e, console := newTestEngine(t, "ab", "", "c", "c", "a", "t")

	result, err := e.PlayRound("cat")
	require.NoError(t, err)
	assert.Equal(t, Won, result.Outcome)
	assert.Equal(t, 6, result.Guesses)

	out := console.out.String()
	assert.Equal(t, 2, strings.Count(out, WrongGuess))
	assert.Equal(t, 1, strings.Count(out, AlreadyGuessed))
	assert.Equal(t, 0, result.Mistakes)
}

func TestPlayRoundRepeatedMissCountsTwice(t *testing.T) {
	e, _ := newTestEngine(t, "z", "z", "c", "a", "t")

	result, err := e.PlayRound("cat")
	require.NoError(t, err)
	assert.Equal(t, Won, result.Outcome)
	assert.Equal(t, 2, result.Mistakes)
}

func TestPlayRoundInputFailure(t *testing.T) {
	e, _ := newTestEngine(t, "c")

	_, err := e.PlayRound("cat")
	require.Error(t, err)
	assert.True(t, gameerr.Is(err, gameerr.InputFailure))
}

func TestPlayRoundOutputFailure(t *testing.T) {
	tests := []struct {
		name   string
		failOn string
		inputs []string
	}{
		{name: "stage", failOn: "Mistakes:"},
		{name: "prompt", failOn: GuessPrompt},
		{name: "notice", failOn: WrongGuess, inputs: []string{"xx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, console := newTestEngine(t, tt.inputs...)
			console.failOn = tt.failOn
			console.writeErr = errors.New("broken pipe")

			_, err := e.PlayRound("cat")
			require.Error(t, err)
			assert.True(t, gameerr.Is(err, gameerr.OutputFailure))
		})
	}
}

func TestPlayRoundEmptyWordIsWonImmediately(t *testing.T) {
	e, console := newTestEngine(t)

	result, err := e.PlayRound("")
	require.NoError(t, err)
	assert.Equal(t, Won, result.Outcome)
	assert.Equal(t, 0, result.Guesses)
	assert.Empty(t, console.out.String())
}
