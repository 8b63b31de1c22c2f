// Package dictionary picks secret words from a count-prefixed word list.
//
// A word list is UTF-8 text whose first line is the decimal number of words
// that follow, one per line:
//
//	3
//	cat
//	dog
//	bird
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"

	"github.com/lox/hangman/internal/gameerr"
)

// Selector draws words from a dictionary file. The file is opened and closed
// on every call, so edits between rounds are picked up.
type Selector struct {
	path   string
	rng    *rand.Rand
	logger *log.Logger
}

// NewSelector creates a selector for the word list at path.
func NewSelector(path string, rng *rand.Rand, logger *log.Logger) *Selector {
	return &Selector{
		path:   path,
		rng:    rng,
		logger: logger.WithPrefix("dictionary"),
	}
}

// Path returns the word list location.
func (s *Selector) Path() string {
	return s.path
}

// NextWord returns one uniformly chosen word from the file.
func (s *Selector) NextWord() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return "", gameerr.New(gameerr.DictionaryUnavailable, "open "+s.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close dictionary", "path", s.path, "error", err)
		}
	}()

	word, err := Select(f, s.rng)
	if err != nil {
		s.logger.Error("Word selection failed", "path", s.path, "error", err)
		return "", err
	}

	s.logger.Debug("Selected word", "path", s.path, "length", len([]rune(word)))
	return word, nil
}

// Select reads a word list from r and returns the entry at a random index in
// [0, N). Lines after the chosen one are never read.
func Select(r io.Reader, rng *rand.Rand) (string, error) {
	br := bufio.NewReader(r)

	countLine, err := readLine(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", gameerr.New(gameerr.MalformedDictionary, "read count", err)
		}
		return "", gameerr.New(gameerr.DictionaryReadFailure, "read count", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return "", gameerr.New(gameerr.MalformedDictionary, "parse count", err)
	}
	if n <= 0 {
		return "", gameerr.New(gameerr.MalformedDictionary, fmt.Sprintf("word count %d", n), nil)
	}

	index := rng.IntN(n)

	var line string
	for i := 0; i <= index; i++ {
		line, err = readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return "", gameerr.New(gameerr.DictionaryReadFailure, fmt.Sprintf("read word %d of %d", i+1, n), err)
		}
	}

	return norm.NFC.String(line), nil
}

// readLine returns the next line without its terminator. A final line with
// no trailing newline is still returned; io.EOF only comes back when nothing
// was left to read.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
