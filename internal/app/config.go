// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPaths are emitter configuration files or directories of .hcl
	// files. The loader for each path is chosen by extension.
	ConfigPaths []string

	LogFormat string
	LogLevel  string

	// Debug forces the debug context when set. When nil the EMITGRID_DEBUG
	// environment variable decides.
	Debug *bool

	HealthcheckPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("at least one configuration path is required")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.HealthcheckPort < 0 {
		return nil, fmt.Errorf("invalid port %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
