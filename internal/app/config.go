package app

import (
	"errors"
	"strings"
	"time"
)

// Defaults for flag and config-file resolution.
const (
	DefaultListenAddr    = ":8080"
	DefaultStopwordsPath = "assets/stopwords.txt"
	DefaultFontPath      = "assets/fonts/simfang.ttf"
	DefaultMaxBodyBytes  = 20 << 20
)

// Config holds runtime configuration for the service.
type Config struct {
	ListenAddr string

	// Fetch
	UserAgent    string        // empty uses the built-in browser-like default
	FetchTimeout time.Duration // zero disables the per-fetch bound
	MaxBodyBytes int64         // zero means unlimited

	// External resources
	StopwordsPath string
	FontPath      string

	// Word-cloud geometry; zero uses the renderer defaults (800x400)
	CloudWidth  int
	CloudHeight int

	// Logging
	LogLevel string
	LogDir   string
	Verbose  bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return errors.New("config: listen address is required")
	}
	if strings.TrimSpace(cfg.StopwordsPath) == "" {
		return errors.New("config: stopwords path is required")
	}
	if strings.TrimSpace(cfg.FontPath) == "" {
		return errors.New("config: font path is required")
	}
	if cfg.MaxBodyBytes < 0 {
		return errors.New("config: negative body limit is not allowed")
	}
	if cfg.CloudWidth < 0 || cfg.CloudHeight < 0 {
		return errors.New("config: negative cloud geometry is not allowed")
	}
	if cfg.FetchTimeout < 0 {
		return errors.New("config: negative fetch timeout is not allowed")
	}
	return nil
}
