package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("QPOD_ADDR", "")
	t.Setenv("QPOD_DB", "")
	t.Setenv("QPOD_LOG_CAPACITY", "")
	t.Setenv("QPOD_LOG_LEVEL", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.Durable())
	assert.Equal(t, 0, cfg.LogCapacity)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("QPOD_ADDR", ":9999")
	t.Setenv("QPOD_DB", "/tmp/decisions.db")
	t.Setenv("QPOD_LOG_CAPACITY", "250")
	t.Setenv("QPOD_LOG_LEVEL", "debug")

	cfg := FromEnv()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.True(t, cfg.Durable())
	assert.Equal(t, "/tmp/decisions.db", cfg.DatabasePath)
	assert.Equal(t, 250, cfg.LogCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_BadCapacityFallsBack(t *testing.T) {
	t.Setenv("QPOD_LOG_CAPACITY", "lots")
	cfg := FromEnv()
	assert.Equal(t, 0, cfg.LogCapacity)

	t.Setenv("QPOD_LOG_CAPACITY", "-3")
	cfg = FromEnv()
	assert.Equal(t, 0, cfg.LogCapacity)
}
