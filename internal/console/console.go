// Package console provides the line-oriented terminal the game talks through.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lox/hangman/internal/gameerr"
)

// Console reads and writes whole lines.
type Console struct {
	r *bufio.Reader
	w io.Writer
}

// New wraps r and w.
func New(r io.Reader, w io.Writer) *Console {
	return &Console{
		r: bufio.NewReader(r),
		w: w,
	}
}

// ReadLine returns the next line with trailing whitespace removed. A last
// line without a terminator is returned normally; after that the error is an
// InputFailure wrapping io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", gameerr.New(gameerr.InputFailure, "read line", err)
	}
	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}

// WriteLine writes s followed by a newline.
func (c *Console) WriteLine(s string) error {
	if _, err := fmt.Fprintln(c.w, s); err != nil {
		return gameerr.New(gameerr.OutputFailure, "write line", err)
	}
	return nil
}

// Write writes s as is. Multi-line blocks such as gallows frames go through
// here so they land in one write.
func (c *Console) Write(s string) error {
	if _, err := io.WriteString(c.w, s); err != nil {
		return gameerr.New(gameerr.OutputFailure, "write", err)
	}
	return nil
}
