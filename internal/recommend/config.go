// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import "fmt"

// Config contains the operational parameters of the engine.
type Config struct {
	// PoolSize is the maximum Stage 1 candidate pool size (M). It must be
	// larger than MaxK to leave re-ranking headroom.
	// Default: 50.
	PoolSize int `json:"pool_size" koanf:"pool_size"`

	// DefaultK is the number of recommendations returned per request.
	// Default: 5.
	DefaultK int `json:"default_k" koanf:"default_k"`

	// MaxK is the upper bound DefaultK may be configured to.
	// Default: 20.
	MaxK int `json:"max_k" koanf:"max_k"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		PoolSize: 50,
		DefaultK: 5,
		MaxK:     20,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("engine.default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("engine.max_k must be >= engine.default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	if c.PoolSize <= c.MaxK {
		return fmt.Errorf("engine.pool_size must exceed engine.max_k, got %d <= %d", c.PoolSize, c.MaxK)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
