// Package config resolves process configuration from the environment once
// at startup.
package config

import (
	"os"
	"strconv"
)

// Config selects the listen address and the log store backend. A non-empty
// DatabasePath picks the durable SQLite backend; otherwise the bounded
// in-memory buffer is used.
type Config struct {
	Addr         string
	DatabasePath string
	LogCapacity  int
	LogLevel     string
}

// FromEnv reads QPOD_ADDR, QPOD_DB, QPOD_LOG_CAPACITY and QPOD_LOG_LEVEL,
// applying defaults for anything unset or unparseable.
func FromEnv() Config {
	cfg := Config{
		Addr:         ":8080",
		DatabasePath: os.Getenv("QPOD_DB"),
		LogCapacity:  0, // store default
		LogLevel:     "info",
	}
	if addr := os.Getenv("QPOD_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if raw := os.Getenv("QPOD_LOG_CAPACITY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.LogCapacity = n
		}
	}
	if lvl := os.Getenv("QPOD_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg
}

// Durable reports whether the durable backend is selected.
func (c Config) Durable() bool { return c.DatabasePath != "" }
