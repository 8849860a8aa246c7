// Package logger exposes the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
	level    = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// L returns the shared logger, building it on first use.
func L() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		cfg.Level = level
		l, err := cfg.Build()
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		instance = l
	})
	return instance
}

// SetLevel changes the level of the shared logger at runtime.
// Unknown levels fall back to info.
func SetLevel(name string) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		lvl = zapcore.InfoLevel
	}
	level.SetLevel(lvl)
}

// Sync flushes buffered entries; call it before the process exits.
func Sync() {
	if instance != nil {
		_ = instance.Sync()
	}
}
