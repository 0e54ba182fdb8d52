package main

import (
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/QuantumPodLabs/quantumpod/internal/buildinfo"
	"github.com/QuantumPodLabs/quantumpod/internal/config"
	httpserver "github.com/QuantumPodLabs/quantumpod/internal/http"
	"github.com/QuantumPodLabs/quantumpod/internal/logstore"
)

func main() {
	cfg := config.FromEnv()
	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	// The backend is chosen exactly once; handlers only ever see the
	// logstore.Store interface.
	var store logstore.Store
	if cfg.Durable() {
		s, err := logstore.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			logger.Fatal("open sqlite store", zap.String("path", cfg.DatabasePath), zap.Error(err))
		}
		store = s
		logger.Info("using durable log store", zap.String("path", cfg.DatabasePath))
	} else {
		store = logstore.NewMemory(cfg.LogCapacity)
		logger.Info("using in-memory log store", zap.Int("capacity", cfg.LogCapacity))
	}
	defer func() { _ = store.Close() }()

	api := httpserver.NewAPI(store, logger, cfg.Durable())
	srv := httpserver.NewServer(api)

	logger.Info("quantumpod listening",
		zap.String("addr", cfg.Addr),
		zap.String("version", buildinfo.Version),
	)
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
