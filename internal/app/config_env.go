package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvOverrides forcefully overrides cfg fields with environment
// variables when the corresponding env vars are set. Call after file config
// so env beats the file; callers reassert explicit flag values afterwards so
// flags stay highest precedence.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("WORDSCOPE_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("WORDSCOPE_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("WORDSCOPE_STOPWORDS"); v != "" {
		cfg.StopwordsPath = v
	}
	if v := os.Getenv("WORDSCOPE_FONT"); v != "" {
		cfg.FontPath = v
	}
	if v := os.Getenv("WORDSCOPE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WORDSCOPE_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}

	if s := os.Getenv("WORDSCOPE_FETCH_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.FetchTimeout = d
		}
	}
	if s := os.Getenv("WORDSCOPE_MAX_BODY_BYTES"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 0 {
			cfg.MaxBodyBytes = n
		}
	}

	setBool := func(dst *bool, envKey string) {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			switch s {
			case "1", "true", "yes", "on":
				*dst = true
			case "0", "false", "no", "off":
				*dst = false
			}
		}
	}
	setBool(&cfg.Verbose, "WORDSCOPE_VERBOSE")
}
