// Package logger builds the slog.Logger used by mazebench from configuration,
// with optional size-based file rotation.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes where and how to log.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// ParseLevel maps a level name to slog.Level; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New returns a logger for cfg and a function releasing its output. For
// file output the parent directory is created and the file is rotated by
// lumberjack.
func New(cfg Config) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	var w io.Writer
	closeFn := noop
	switch cfg.Output {
	case "stderr":
		w = os.Stderr
	case "file":
		if cfg.FilePath == "" {
			cfg.FilePath = "logs/mazelab.log"
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, noop, errors.Wrapf(err, "logger: create directory for %s", cfg.FilePath)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w = lj
		closeFn = lj.Close
	default:
		w = os.Stdout
	}

	return slog.New(NewHandler(w, cfg)), closeFn, nil
}

// NewHandler returns the JSON or text handler for cfg writing to w.
// Source locations are added at debug level.
func NewHandler(w io.Writer, cfg Config) slog.Handler {
	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}
	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
