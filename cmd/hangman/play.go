package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/console"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/menu"
	"github.com/lox/hangman/internal/stage"
)

type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	rt, err := g.setup(quartz.NewReal())
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.close(); err != nil {
			rt.logger.Error("Failed to close log file", "error", err)
		}
	}()

	con := console.New(os.Stdin, os.Stdout)
	renderer := stage.NewRenderer(os.Stdout, rt.cfg.ColorEnabled())
	engine := game.NewEngine(con, renderer, rt.clock, rt.logger)

	return menu.NewSession(con, rt.selector, engine, rt.logger).Run()
}
