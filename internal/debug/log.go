package debug

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the module.
//
// Debug output is only emitted when debug mode is enabled. Warnf is always
// emitted: it records contained failures such as a rejected attribute write.
//
// Example usage:
//
//	logger := debug.GetLogger()
//	logger.Debugf("classified %s as %s", proc, class)
//	logger.Warnf("failed to set prop %s: %v", key, err)
type Logger interface {
	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
	// Debug logs debug arguments
	Debug(args ...any)
	// Warnf logs a formatted warning
	Warnf(format string, args ...any)
}

// zapLogger adapts a zap SugaredLogger to Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z zapLogger) Debug(args ...any)                 { z.s.Debug(fmt.Sprint(args...)) }
func (z zapLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }

// NewLogger wraps a zap core. Tests pass an observer core to capture entries.
func NewLogger(core zapcore.Core) Logger {
	return zapLogger{s: zap.New(core).Named("pixelprops").Sugar()}
}

var (
	// level gates the global logger; warnings by default, debug once enabled
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	// l is the private global logger (use GetLogger() to access)
	l    Logger = NewLogger(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	))
	once sync.Once
)

// GetLogger returns the configured logger.
// Always use this function to access the logger instead of storing a reference.
func GetLogger() Logger {
	return l
}

// InitLogger raises the global logger to debug level when debug mode is on.
// Uses sync.Once to ensure initialization happens only once, even in concurrent environments.
// Call this after debug.Init() to ensure Active.Enabled is set.
func InitLogger() {
	once.Do(func() {
		if Active.Enabled {
			level.SetLevel(zapcore.DebugLevel)
			l.Debug("Debug logging enabled")
		}
	})
}
