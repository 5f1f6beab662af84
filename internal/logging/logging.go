// Package logging provides the zap loggers used across jsonsketch.
//
// The terminal UI owns stdout, so logs go to a file when one is configured
// and are discarded otherwise. CLI subcommands log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper of zap.SugaredLogger.
type Logger = *zap.SugaredLogger

// Options selects where and how much to log.
type Options struct {
	Level string
	// File receives logs when set. It takes precedence over Stderr.
	File   string
	Stderr bool
}

var (
	mu       sync.RWMutex
	logLevel = zapcore.InfoLevel
	sink     zapcore.WriteSyncer
)

// ParseLevel maps ["debug", "info", "warn", "error"] to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// Setup configures the sink for loggers created afterwards. The returned
// closer releases the log file, if any.
func Setup(opts Options) (io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var closer io.Closer = nopCloser{}
	var ws zapcore.WriteSyncer
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		ws = zapcore.AddSync(f)
		closer = f
	case opts.Stderr:
		ws = zapcore.Lock(os.Stderr)
	}

	mu.Lock()
	logLevel = level
	sink = ws
	mu.Unlock()

	return closer, nil
}

// New creates a named logger on the configured sink, or a no-op logger when
// Setup has not chosen one.
func New(name string) Logger {
	mu.RLock()
	defer mu.RUnlock()

	if sink == nil {
		return zap.NewNop().Sugar()
	}

	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(humanEncoderConfig()),
			sink,
			logLevel,
		),
		zap.AddStacktrace(zap.ErrorLevel),
	).Named(name).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zap.NewNop().Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.EpochTimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func humanEncoderConfig() zapcore.EncoderConfig {
	cfg := encoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
