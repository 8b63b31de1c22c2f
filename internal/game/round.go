package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxMistakes is the number of wrong guesses that loses a round.
const MaxMistakes = 6

// Placeholder marks a letter that has not been revealed yet.
const Placeholder = '*'

// Outcome classifies a finished round.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Verdict describes what a single guess did to the round.
type Verdict int

const (
	// Invalid means the guess was not exactly one letter.
	Invalid Verdict = iota
	// Miss means the letter is not in the word; a mistake was counted.
	Miss
	// Repeat means the letter was already revealed.
	Repeat
	// Hit means the letter was revealed at one or more positions.
	Hit
)

func (v Verdict) String() string {
	switch v {
	case Miss:
		return "miss"
	case Repeat:
		return "repeat"
	case Hit:
		return "hit"
	default:
		return "invalid"
	}
}

// Round is the state of one game. It is a value: Guess returns the next
// state and leaves the receiver untouched.
type Round struct {
	word     []rune
	mask     []rune
	mistakes int
}

// NewRound starts a round for word with every letter hidden.
func NewRound(word string) Round {
	w := []rune(word)
	mask := make([]rune, len(w))
	for i := range mask {
		mask[i] = Placeholder
	}
	return Round{word: w, mask: mask}
}

// Word returns the secret word.
func (r Round) Word() string { return string(r.word) }

// Mask returns the player visible form of the word.
func (r Round) Mask() string { return string(r.mask) }

// Mistakes returns the number of wrong guesses so far.
func (r Round) Mistakes() int { return r.mistakes }

// Done reports whether the round has reached Won or Lost.
func (r Round) Done() bool {
	return r.Outcome() != InProgress
}

// Outcome returns Lost once the mistake budget is spent, Won once nothing is
// hidden, and InProgress otherwise.
func (r Round) Outcome() Outcome {
	if r.mistakes >= MaxMistakes {
		return Lost
	}
	for _, c := range r.mask {
		if c == Placeholder {
			return InProgress
		}
	}
	return Won
}

// Guess applies one guess. Only revealed letters count as already guessed,
// so a wrong letter entered twice costs two mistakes.
// Guesses made after the round is over are rejected as Invalid.
func (r Round) Guess(g string) (Round, Verdict) {
	if r.Done() {
		return r, Invalid
	}
	g = norm.NFC.String(g)
	if utf8.RuneCountInString(g) != 1 {
		return r, Invalid
	}
	c, _ := utf8.DecodeRuneInString(g)
	lc := unicode.ToLower(c)

	var positions []int
	for i, w := range r.word {
		if unicode.ToLower(w) == lc {
			positions = append(positions, i)
		}
	}

	if len(positions) == 0 {
		r.mistakes++
		return r, Miss
	}

	if strings.ContainsRune(string(r.mask), lc) {
		return r, Repeat
	}

	mask := make([]rune, len(r.mask))
	copy(mask, r.mask)
	for _, i := range positions {
		mask[i] = lc
	}
	r.mask = mask
	return r, Hit
}
