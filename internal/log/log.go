// Package log provides the structured logger shared by every dadosbr package.
package log

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

var sugar atomic.Pointer[zap.SugaredLogger]

func init() {
	logger, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}
	Set(logger)
}

// Init initializes the package-level logger. Debug enables development output and the
// debug level.
func Init(debug bool) error {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		logger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	Set(logger)
	return nil
}

// Set replaces the package-level logger, typically with zap.NewNop() or an observer in tests.
// It is safe to call while other goroutines log.
func Set(logger *zap.Logger) {
	sugar.Store(logger.Sugar())
}

// Logger returns the sugared logger. Until Init or Set is called it is a production logger.
func Logger() *zap.SugaredLogger {
	return sugar.Load()
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Logger().Sync()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	Logger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	Logger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	Logger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	Logger().Errorw(msg, keysAndValues...)
}
