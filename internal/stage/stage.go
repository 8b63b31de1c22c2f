// Package stage draws the gallows for a given number of mistakes.
package stage

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Frames holds one drawing per mistake count, from the empty gallows to the
// full figure.
var Frames = [...][]string{
	{
		"  +---+",
		"  |   |",
		"      |",
		"      |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		"      |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		"  |   |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		" /|   |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		" /|\\  |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		" /|\\  |",
		" /    |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		" /|\\  |",
		" / \\  |",
		"=========",
	},
}

// Frame returns the drawing for mistakes, or nil when there is none.
func Frame(mistakes int) []string {
	if mistakes < 0 || mistakes >= len(Frames) {
		return nil
	}
	return Frames[mistakes]
}

// Render returns the frame followed by the mistake count and the mask.
func Render(mistakes int, mask string) string {
	var b strings.Builder
	for _, line := range Frame(mistakes) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Mistakes: %d\n", mistakes)
	fmt.Fprintf(&b, "Word: %s\n", mask)
	return b.String()
}

// Renderer draws stages with terminal colors when the output supports them.
type Renderer struct {
	gallows lipgloss.Style
	figure  lipgloss.Style
	status  lipgloss.Style
	mask    lipgloss.Style
}

// NewRenderer creates a renderer whose color profile is detected from w.
// With color disabled the output is identical to Render.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}
	return newRenderer(lr)
}

func newRenderer(r *lipgloss.Renderer) *Renderer {
	return &Renderer{
		gallows: r.NewStyle().Foreground(lipgloss.Color("#626262")),
		figure:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		status:  r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
		mask:    r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
	}
}

// Render is the styled form of the package level Render. Lines are styled one
// at a time so lipgloss never pads the frame.
func (r *Renderer) Render(mistakes int, mask string) string {
	var b strings.Builder
	for i, line := range Frame(mistakes) {
		style := r.gallows
		// rows 2 to 4 carry the figure
		if i >= 2 && i <= 4 && mistakes > 0 {
			style = r.figure
		}
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}
	b.WriteString(r.status.Render(fmt.Sprintf("Mistakes: %d", mistakes)))
	b.WriteByte('\n')
	b.WriteString(r.status.Render("Word: ") + r.mask.Render(mask))
	b.WriteByte('\n')
	return b.String()
}
