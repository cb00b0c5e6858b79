package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	NetlistPath string // .hcl file or directory

	LogFormat string
	LogLevel  string
	// LogFile receives a JSON copy of every log record when set.
	LogFile string

	Workers int
	// Inputs override or extend the job's simulation inputs.
	Inputs map[string]bool
	// Harden is appended to the job's TMR targets.
	Harden []string

	DotPath   string
	Adjacency bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.NetlistPath == "" {
		return nil, errors.New("NetlistPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	return &cfg, nil
}
