package main

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/cmd/hangman/shared"
	"github.com/lox/hangman/internal/config"
	"github.com/lox/hangman/internal/dictionary"
	"github.com/lox/hangman/internal/randutil"
)

// Globals are flags shared by every command. Flags left unset fall back to
// the config file.
type Globals struct {
	Config     string `kong:"default='hangman.hcl',env='HANGMAN_CONFIG',help='HCL config file (optional)'"`
	Dictionary string `kong:"short='d',env='HANGMAN_DICTIONARY',help='Word list: a count line followed by one word per line'"`
	Seed       *int64 `kong:"env='HANGMAN_SEED',help='Deterministic seed for word selection (optional)'"`
	LogLevel   string `kong:"env='HANGMAN_LOG_LEVEL',help='Log level (debug|info|warn|error)'"`
	LogFile    string `kong:"env='HANGMAN_LOG_FILE',help='Write logs to this file'"`
	NoColor    bool   `kong:"env='HANGMAN_NO_COLOR',help='Disable colored output'"`
}

// settings merges the config file with any flags that were given.
func (g *Globals) settings() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", g.Config, err)
	}

	if g.Dictionary != "" {
		cfg.Dictionary = g.Dictionary
	}
	if g.Seed != nil {
		cfg.Seed = g.Seed
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.LogFile = g.LogFile
	}
	if g.NoColor {
		color := false
		cfg.Color = &color
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// deps is everything a command needs to start a session.
type deps struct {
	cfg      *config.Config
	logger   *log.Logger
	clock    quartz.Clock
	rng      *rand.Rand
	selector *dictionary.Selector
	close    func() error
}

func (g *Globals) setup(clock quartz.Clock) (*deps, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := shared.SetupLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	seed := randutil.Resolve(cfg.Seed, clock)
	logger.Info("Starting session", "dictionary", cfg.Dictionary, "seed", seed)
	rng := randutil.New(seed)

	return &deps{
		cfg:      cfg,
		logger:   logger,
		clock:    clock,
		rng:      rng,
		selector: dictionary.NewSelector(cfg.Dictionary, rng, logger),
		close:    closeLog,
	}, nil
}
