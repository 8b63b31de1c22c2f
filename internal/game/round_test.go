package game

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRound(t *testing.T) {
	r := NewRound("hangman")

	assert.Equal(t, "hangman", r.Word())
	assert.Equal(t, "*******", r.Mask())
	assert.Equal(t, 0, r.Mistakes())
	assert.Equal(t, InProgress, r.Outcome())
	assert.False(t, r.Done())
}

func TestGuessHitRevealsEveryPosition(t *testing.T) {
	r, v := NewRound("banana").Guess("a")

	assert.Equal(t, Hit, v)
	assert.Equal(t, "*a*a*a", r.Mask())
	assert.Equal(t, 0, r.Mistakes())
}

func TestGuessIsCaseInsensitive(t *testing.T) {
	r, v := NewRound("Hangman").Guess("h")
	require.Equal(t, Hit, v)
	assert.Equal(t, "h******", r.Mask())

	r, v = r.Guess("H")
	assert.Equal(t, Repeat, v)
	assert.Equal(t, "h******", r.Mask())

	r, v = r.Guess("A")
	assert.Equal(t, Hit, v)
	assert.Equal(t, "ha***a*", r.Mask())
	assert.Equal(t, "Hangman", r.Word())
}

func TestGuessInvalidInput(t *testing.T) {
	start := NewRound("cat")

	for _, g := range []string{"", "ab", "cat", "  "} {
		t.Run(g, func(t *testing.T) {
			r, v := start.Guess(g)
			assert.Equal(t, Invalid, v)
			assert.Equal(t, start, r)
		})
	}
}

func TestGuessAcceptsSingleNonASCIILetter(t *testing.T) {
	r, v := NewRound("caf\u00e9").Guess("\u00c9")
	assert.Equal(t, Hit, v)
	assert.Equal(t, "***\u00e9", r.Mask())

	// decomposed e plus combining acute is still one letter
	r, v = NewRound("caf\u00e9").Guess("e\u0301")
	assert.Equal(t, Hit, v)
	assert.Equal(t, "***\u00e9", r.Mask())
}

func TestRepeatedCorrectGuessChangesNothing(t *testing.T) {
	first, v := NewRound("cat").Guess("c")
	require.Equal(t, Hit, v)

	second, v := first.Guess("c")
	assert.Equal(t, Repeat, v)
	assert.Equal(t, first, second)
}

func TestRepeatedWrongGuessCountsTwice(t *testing.T) {
	r, v := NewRound("cat").Guess("z")
	require.Equal(t, Miss, v)
	require.Equal(t, 1, r.Mistakes())

	r, v = r.Guess("z")
	assert.Equal(t, Miss, v)
	assert.Equal(t, 2, r.Mistakes())
	assert.Equal(t, "***", r.Mask())
}

func TestGuessDoesNotMutateReceiver(t *testing.T) {
	start := NewRound("cat")
	_, _ = start.Guess("a")
	_, _ = start.Guess("q")

	assert.Equal(t, "***", start.Mask())
	assert.Equal(t, 0, start.Mistakes())
}

func TestRoundOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		guesses  []string
		outcome  Outcome
		mistakes int
	}{
		{
			name:    "all letters in order",
			word:    "hangman",
			guesses: []string{"h", "a", "n", "g", "m"},
			outcome: Won,
		},
		{
			name:     "five misses then the word",
			word:     "go",
			guesses:  []string{"a", "b", "c", "d", "e", "g", "o"},
			outcome:  Won,
			mistakes: 5,
		},
		{
			name:     "six distinct misses",
			word:     "cat",
			guesses:  []string{"x", "y", "z", "q", "w", "e"},
			outcome:  Lost,
			mistakes: MaxMistakes,
		},
		{
			name:     "same miss six times",
			word:     "cat",
			guesses:  []string{"x", "x", "x", "x", "x", "x"},
			outcome:  Lost,
			mistakes: MaxMistakes,
		},
		{
			name:     "mixed case with noise",
			word:     "Door",
			guesses:  []string{"D", "zz", "o", "O", "k", "R"},
			outcome:  Won,
			mistakes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRound(tt.word)
			for _, g := range tt.guesses {
				require.False(t, r.Done(), "round ended before guess %q", g)
				r, _ = r.Guess(g)
				assert.Equal(t, utf8.RuneCountInString(tt.word), utf8.RuneCountInString(r.Mask()))
			}
			assert.Equal(t, tt.outcome, r.Outcome())
			assert.Equal(t, tt.mistakes, r.Mistakes())
			assert.True(t, r.Done())
		})
	}
}

func TestGuessAfterRoundOverIsRejected(t *testing.T) {
	r := NewRound("a")
	r, _ = r.Guess("a")
	require.Equal(t, Won, r.Outcome())

	next, v := r.Guess("b")
	assert.Equal(t, Invalid, v)
	assert.Equal(t, r, next)

	lost := NewRound("a")
	for range MaxMistakes {
		lost, _ = lost.Guess("z")
	}
	lost, _ = lost.Guess("z")
	assert.Equal(t, MaxMistakes, lost.Mistakes())
}

func TestOutcomeAndVerdictStrings(t *testing.T) {
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "hit", Hit.String())
	assert.Equal(t, "miss", Miss.String())
	assert.Equal(t, "repeat", Repeat.String())
	assert.Equal(t, "invalid", Invalid.String())
}
