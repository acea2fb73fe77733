// Package logging builds the process zap logger: an optional console core
// and a JSON file core rotated by lumberjack. While the TUI owns the terminal
// only the file core is enabled.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/config"
)

// Options configures New.
type Options struct {
	Name  string
	Level string

	// File is the JSON log path; empty disables file logging.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Console receives human-readable output; nil disables it.
	Console zapcore.WriteSyncer
}

// FromConfig maps the [general] and [logging] sections onto Options.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Name:       "orbit",
		Level:      cfg.General.LogLevel,
		File:       cfg.General.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}
}

// New builds a logger. Every entry carries a per-process session id. The
// returned func flushes and closes the log file.
func New(o Options) (*zap.Logger, func(), error) {
	level := zap.NewAtomicLevel()
	if o.Level != "" {
		if err := level.UnmarshalText([]byte(o.Level)); err != nil {
			return nil, nil, fmt.Errorf("logging: level %q: %w", o.Level, err)
		}
	}

	var cores []zapcore.Core
	if o.Console != nil {
		cores = append(cores, zapcore.NewCore(consoleEncoder(), o.Console, level))
	}

	var lj *lumberjack.Logger
	if o.File != "" {
		lj = &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSizeMB,
			MaxBackups: o.MaxBackups,
			MaxAge:     o.MaxAgeDays,
			Compress:   o.Compress,
		}
		cores = append(cores, zapcore.NewCore(jsonEncoder(), zapcore.AddSync(lj), level))
	}

	core := zapcore.NewNopCore()
	if len(cores) > 0 {
		core = zapcore.NewTee(cores...)
	}
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("session", uuid.NewString()))
	if o.Name != "" {
		logger = logger.Named(o.Name)
	}

	cleanup := func() {
		_ = logger.Sync()
		if lj != nil {
			_ = lj.Close()
		}
	}
	return logger, cleanup, nil
}

func jsonEncoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(ec)
}

func consoleEncoder() zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}
