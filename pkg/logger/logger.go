package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled application logger backed by zap.
// Init is called once during startup; the package-level helpers keep the
// call sites short (LOG_LEVEL env: debug|info|warn|error).

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
)

func init() {
	l, _ := zap.NewProduction()
	sugar = l.Sugar()
}

// Init sets the global logger at the given level (case-insensitive).
// Unknown or empty values default to info.
func Init(level string) {
	lvl := zapcore.InfoLevel
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn", "warning":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}

	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

// SetLogger replaces the global logger. Used by tests to capture output.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { get().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { get().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { get().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { get().Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { get().Fatalf(format, v...) }

func Debug(msg string) { get().Debug(msg) }
func Info(msg string)  { get().Info(msg) }
func Warn(msg string)  { get().Warn(msg) }
func Error(msg string) { get().Error(msg) }

// Sync flushes buffered log entries. Safe to call on shutdown.
func Sync() {
	_ = get().Sync()
}
