package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Thin wrapper around a zap SugaredLogger so handlers and repositories
// don't carry zap imports everywhere. Init is called once during startup;
// before that the package uses a no-op logger so tests stay quiet.

var sugar = zap.NewNop().Sugar()

// Init configures the global logger. level is case-insensitive
// (debug|info|warn|error); format is "json" or "console".
func Init(level, format string) {
	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		logLevel.SetLevel(zap.InfoLevel)
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = logLevel
	cfg.OutputPaths = []string{"stdout"}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	sugar = l.Sugar()
}

func Debugf(template string, args ...interface{}) { sugar.Debugf(template, args...) }
func Infof(template string, args ...interface{})  { sugar.Infof(template, args...) }
func Warnf(template string, args ...interface{})  { sugar.Warnf(template, args...) }
func Errorf(template string, args ...interface{}) { sugar.Errorf(template, args...) }
func Fatalf(template string, args ...interface{}) { sugar.Fatalf(template, args...) }

func Info(msg string)  { sugar.Info(msg) }
func Warn(msg string)  { sugar.Warn(msg) }
func Error(msg string) { sugar.Error(msg) }

// Infow logs a message with key/value context.
func Infow(msg string, keysAndValues ...interface{}) { sugar.Infow(msg, keysAndValues...) }

// Sync flushes buffered log entries; call before exit.
func Sync() {
	_ = sugar.Sync()
}
