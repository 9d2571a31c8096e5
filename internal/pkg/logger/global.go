package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalLogger   *ZapLogger
	fallbackLogger *ZapLogger
	once           sync.Once
	mu             sync.RWMutex
)

// SetGlobalLogger sets the process-wide logger, called once during startup
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger, falling back to a production logger
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	once.Do(func() {
		defaultLogger, err := zap.NewProduction(zap.AddCallerSkip(1))
		if err != nil {
			defaultLogger = zap.NewNop()
		}
		fallbackLogger = &ZapLogger{Logger: defaultLogger}
	})
	return fallbackLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}
