// Package config loads the optional hangman.hcl settings file.
//
//	dictionary = "/usr/share/hangman/words.txt"
//	seed       = 42
//	log_level  = "debug"
//	log_file   = "hangman.log"
//	color      = false
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "hangman.hcl"

// Config holds game settings. Pointer fields are optional in the file.
type Config struct {
	Dictionary string `hcl:"dictionary,optional"`
	Seed       *int64 `hcl:"seed,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	LogFile    string `hcl:"log_file,optional"`
	Color      *bool  `hcl:"color,optional"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	color := true
	return &Config{
		Dictionary: "words.txt",
		LogLevel:   "info",
		Color:      &color,
	}
}

// Load reads filename. A missing file is not an error and yields the
// defaults; attributes left out of the file are filled from the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if cfg.Dictionary == "" {
		cfg.Dictionary = defaults.Dictionary
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Color == nil {
		cfg.Color = defaults.Color
	}

	return &cfg, nil
}

// Validate checks the settings for values the game cannot use.
func (c *Config) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("dictionary path is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// ColorEnabled reports whether styled output is wanted.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
