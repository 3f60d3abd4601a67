// Package config loads settings shared by the window and snapshot commands.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// ParseEnv overlays environment variables onto each target. Fields whose
// variable is unset keep the value already in the struct, so targets should
// be filled with defaults first.
func ParseEnv(targets ...any) error {
	for _, target := range targets {
		if err := env.Parse(target); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}
	return nil
}

// NewLogger returns a development logger when debug is set and a production
// one otherwise.
func NewLogger(debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}
