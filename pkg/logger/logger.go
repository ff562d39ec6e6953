// Package logger provides component-tagged leveled logging for the portal.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger = newSugar(zapcore.InfoLevel)
)

func newSugar(level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Development config only fails on bad sink paths; fall back to no-op.
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLevel reconfigures the global logger at the given level
// ("debug", "info", "warn", "error"). Unknown values keep info.
func SetLevel(level string) {
	lv := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		lv = parsed
	}
	mu.Lock()
	sugar = newSugar(lv)
	mu.Unlock()
}

func log() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func flatten(component string, fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, 2+2*len(fields))
	kv = append(kv, "component", component)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}

// InfoCF logs an info message tagged with a component and structured fields.
func InfoCF(component, msg string, fields map[string]interface{}) {
	log().Infow(msg, flatten(component, fields)...)
}

// WarnCF logs a warning tagged with a component and structured fields.
func WarnCF(component, msg string, fields map[string]interface{}) {
	log().Warnw(msg, flatten(component, fields)...)
}

// ErrorCF logs an error tagged with a component and structured fields.
func ErrorCF(component, msg string, fields map[string]interface{}) {
	log().Errorw(msg, flatten(component, fields)...)
}

// DebugCF logs a debug message tagged with a component and structured fields.
func DebugCF(component, msg string, fields map[string]interface{}) {
	log().Debugw(msg, flatten(component, fields)...)
}

// Info logs a plain info message.
func Info(msg string) {
	log().Info(msg)
}
