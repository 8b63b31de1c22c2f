package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/stage"
	"github.com/lox/hangman/internal/tui"
)

type TUICmd struct {
	NoAltScreen bool `kong:"help='Render inline instead of taking over the terminal'"`
}

func (c *TUICmd) Run(g *Globals) error {
	rt, err := g.setup(quartz.NewReal())
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.close(); err != nil {
			rt.logger.Error("Failed to close log file", "error", err)
		}
	}()

	model := tui.NewModel(rt.selector, stage.NewRenderer(os.Stdout, rt.cfg.ColorEnabled()), rt.logger)

	var opts []tea.ProgramOption
	if !c.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	tally := model.Tally()
	rt.logger.Info("Session ended", "won", tally.Won, "lost", tally.Lost)
	return model.Err()
}
