package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ytget/movie-explorer/internal/config"
)

// Log file rotation
const (
	MaxFileSizeMB  = 10
	MaxFileBackups = 3
	MaxFileAgeDays = 28
)

// ParseLevel maps a config level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup configures the zerolog logger. The returned closer flushes the log
// file, if any.
func Setup(cfg config.LoggingConfig) (zerolog.Logger, io.Closer) {
	return setup(cfg, os.Stderr)
}

func setup(cfg config.LoggingConfig, stderr *os.File) (zerolog.Logger, io.Closer) {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	var console io.Writer = stderr
	if cfg.Format != "json" {
		color := cfg.Color && isatty.IsTerminal(stderr.Fd())
		console = zerolog.ConsoleWriter{
			Out:        stderr,
			TimeFormat: time.RFC3339,
			NoColor:    !color,
		}
	}

	var closer io.Closer = nopCloser{}
	out := console
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    MaxFileSizeMB,
			MaxBackups: MaxFileBackups,
			MaxAge:     MaxFileAgeDays,
		}
		closer = file
		out = zerolog.MultiLevelWriter(console, file)
	}

	return zerolog.New(out).With().Timestamp().Logger(), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
