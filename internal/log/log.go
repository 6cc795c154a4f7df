// Package log wraps a package-level zap logger shared by the CLI, the HTTP
// boundary and the lambda entry point.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu         sync.RWMutex
	baseLogger = zap.NewNop()
	sugared    = baseLogger.Sugar()
)

// Init replaces the package logger. Debug selects zap's development config.
func Init(debug bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("initializing zap logger: %w", err)
	}

	Set(zapLogger)
	return nil
}

// Set installs an already-built logger, mostly for tests and the lambda runtime.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	baseLogger = l
	sugared = l.Sugar()
}

// GetZapLogger returns the base zap logger.
func GetZapLogger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return baseLogger
}

// GetSugaredLogger returns the sugared logger instance.
func GetSugaredLogger() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugared
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = GetZapLogger().Sync()
}

// DebugEnabled reports whether debug entries would be written.
func DebugEnabled() bool {
	return GetZapLogger().Core().Enabled(zapcore.DebugLevel)
}

func Debugw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...any) {
	GetSugaredLogger().Fatalf(template, args...)
}
