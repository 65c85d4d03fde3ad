package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "gridpop.log"

var (
	mu           sync.RWMutex
	logger       = zap.NewNop()
	level        = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	baseLevel    = zapcore.InfoLevel
	traceEnabled bool
	logPath      = defaultLogFile
)

// Configure points the shared logger at path using the named level. Empty
// values fall back to the defaults. Directories are created automatically
// when missing. Until Configure runs every call is a no-op.
func Configure(path, levelName string) error {
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	parsed, err := zapcore.ParseLevel(strings.TrimSpace(levelName))
	if err != nil || strings.TrimSpace(levelName) == "" {
		parsed = zapcore.InfoLevel
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	baseLevel = parsed
	level.SetLevel(effectiveLevel())

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}
	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	_ = logger.Sync()
	logger = built
	logPath = path
	return nil
}

// Path returns the active log destination.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// SetTraceEnabled toggles emission of structured trace entries. Tracing
// lowers the logger to debug level for as long as it stays enabled.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	level.SetLevel(effectiveLevel())
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are currently written.
func TraceEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return traceEnabled
}

func effectiveLevel() zapcore.Level {
	if traceEnabled {
		return zapcore.DebugLevel
	}
	return baseLevel
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Error records err at error level.
func Error(err error) {
	if err == nil {
		return
	}
	current().Error(err.Error())
}

// Warn records a warning with optional structured fields.
func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

// Info records an informational message with optional structured fields.
func Info(msg string, fields ...zap.Field) {
	current().Info(msg, fields...)
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	fields := []zap.Field{zap.String("event", event)}
	if payload != nil {
		fields = append(fields, zap.Any("payload", payload))
	}
	current().Debug("trace", fields...)
}

// Sync flushes buffered entries. Errors from syncing terminals are ignored.
func Sync() {
	_ = current().Sync()
}
