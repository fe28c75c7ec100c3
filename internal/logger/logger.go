package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a structured logger writing to stderr. Stdout is reserved for
// the single JSON status line consumed by the bar, so nothing else may ever
// be printed there.
func New(debug bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	if env := parseLevel(os.Getenv("METEOBAR_LOG_LEVEL")); env != nil {
		level = *env
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}

func parseLevel(s string) *zapcore.Level {
	var l zapcore.Level
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		l = zapcore.DebugLevel
	case "INFO":
		l = zapcore.InfoLevel
	case "WARN", "WARNING":
		l = zapcore.WarnLevel
	case "ERROR":
		l = zapcore.ErrorLevel
	default:
		return nil
	}
	return &l
}
