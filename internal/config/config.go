// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

// Package config defines the CartSense service configuration and its
// layered loading: built-in defaults, an optional YAML file, then
// environment variables, in increasing precedence.
package config

import (
	"fmt"
	"time"

	"github.com/cartsense/cartsense/internal/logging"
	"github.com/cartsense/cartsense/internal/recommend"
	"github.com/cartsense/cartsense/internal/recommend/storage"
)

// Config is the root configuration of the service.
type Config struct {
	Server    ServerConfig     `json:"server" koanf:"server"`
	Security  SecurityConfig   `json:"security" koanf:"security"`
	Logging   logging.Config   `json:"logging" koanf:"logging"`
	Engine    recommend.Config `json:"engine" koanf:"engine"`
	Artifacts storage.Paths    `json:"artifacts" koanf:"artifacts"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `json:"host" koanf:"host"`
	Port            int           `json:"port" koanf:"port"`
	ReadTimeout     time.Duration `json:"read_timeout" koanf:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" koanf:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `json:"rate_limit_reqs" koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `json:"rate_limit_window" koanf:"rate_limit_window"`
	RateLimitDisabled bool          `json:"rate_limit_disabled" koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `json:"cors_origins" koanf:"cors_origins"`
}

// Validate checks the loaded configuration for values the service cannot
// start with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be at least 1")
	}
	if c.Artifacts.Catalog == "" || c.Artifacts.CoOccurrence == "" || c.Artifacts.Ranking == "" {
		return fmt.Errorf("artifacts paths must all be set")
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
