// Package config loads interpreter settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"codeberg.org/rileyq/lox/internal/compile/parser"
)

type Config struct {
	// MaxDepth bounds expression nesting. Zero means parser.DefaultMaxDepth.
	MaxDepth           int    `yaml:"max_depth"`
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	// History is the REPL history file. A leading ~ expands to the home
	// directory; empty disables history.
	History  string `yaml:"history"`
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		MaxDepth:           parser.DefaultMaxDepth,
		Prompt:             "> ",
		ContinuationPrompt: ". ",
		History:            "~/.lox_history",
		LogLevel:           "warn",
	}
}

// Load reads path on top of the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r on top of the defaults. An empty document yields
// the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. Empty means info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// ParserConfig returns the parser settings carried by c.
func (c *Config) ParserConfig() *parser.Config {
	return &parser.Config{MaxDepth: c.MaxDepth}
}

// HistoryPath returns History with ~ expanded.
func (c *Config) HistoryPath() (string, error) {
	if c.History == "" {
		return "", nil
	}
	rest, ok := strings.CutPrefix(c.History, "~")
	if !ok {
		return c.History, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("history: %w", err)
	}
	return filepath.Join(home, rest), nil
}
