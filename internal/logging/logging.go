// Package logging wires the global zerolog logger: console always, plus an
// optional rotating file sink.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls log level and the optional file sink.
type Config struct {
	Level      string // zerolog level name; empty means info
	Dir        string // log directory; empty disables the file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Verbose    bool // forces debug regardless of Level
}

// Setup configures the global logger. Call once at process start before
// anything logs.
func Setup(cfg Config) error {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err == nil {
			level = parsed
		}
	}
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	var sink io.Writer = console
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return err
		}
		file := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "wordscope.log"),
			MaxSize:    orDefault(cfg.MaxSizeMB, 10),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
			Compress:   cfg.Compress,
		}
		sink = io.MultiWriter(console, file)
	}
	log.Logger = zerolog.New(sink).With().Timestamp().Logger()
	return nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
