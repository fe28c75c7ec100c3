package logger

import "go.uber.org/zap"

// Global logger instance. Defaults to a non-debug logger so packages can log
// before Init runs.
var global = New(false)

// Init replaces the global logger, typically after settings are loaded.
func Init(debug bool) {
	global = New(debug)
}

// Get returns the global logger instance.
func Get() *zap.SugaredLogger {
	return global
}

// Debugf logs a formatted debug message using the global logger.
func Debugf(format string, args ...interface{}) {
	global.Debugf(format, args...)
}

// Infof logs a formatted info message using the global logger.
func Infof(format string, args ...interface{}) {
	global.Infof(format, args...)
}

// Warnf logs a formatted warning message using the global logger.
func Warnf(format string, args ...interface{}) {
	global.Warnf(format, args...)
}

// Errorf logs a formatted error message using the global logger.
func Errorf(format string, args ...interface{}) {
	global.Errorf(format, args...)
}
