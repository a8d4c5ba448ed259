package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags and env variables.
type FileConfig struct {
	Listen string `yaml:"listen" json:"listen"`

	Fetch struct {
		UserAgent    string        `yaml:"userAgent" json:"userAgent"`
		Timeout      time.Duration `yaml:"timeout" json:"timeout"`
		MaxBodyBytes int64         `yaml:"maxBodyBytes" json:"maxBodyBytes"`
	} `yaml:"fetch" json:"fetch"`

	Stopwords string `yaml:"stopwords" json:"stopwords"`
	Font      string `yaml:"font" json:"font"`

	Cloud struct {
		Width  int `yaml:"width" json:"width"`
		Height int `yaml:"height" json:"height"`
	} `yaml:"cloud" json:"cloud"`

	Log struct {
		Level string `yaml:"level" json:"level"`
		Dir   string `yaml:"dir" json:"dir"`
	} `yaml:"log" json:"log"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// still carry their flag defaults. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if (cfg.ListenAddr == "" || cfg.ListenAddr == DefaultListenAddr) && fc.Listen != "" {
		cfg.ListenAddr = fc.Listen
	}

	if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if (cfg.MaxBodyBytes == 0 || cfg.MaxBodyBytes == DefaultMaxBodyBytes) && fc.Fetch.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = fc.Fetch.MaxBodyBytes
	}

	if (cfg.StopwordsPath == "" || cfg.StopwordsPath == DefaultStopwordsPath) && fc.Stopwords != "" {
		cfg.StopwordsPath = fc.Stopwords
	}
	if (cfg.FontPath == "" || cfg.FontPath == DefaultFontPath) && fc.Font != "" {
		cfg.FontPath = fc.Font
	}

	if cfg.CloudWidth == 0 && fc.Cloud.Width > 0 {
		cfg.CloudWidth = fc.Cloud.Width
	}
	if cfg.CloudHeight == 0 && fc.Cloud.Height > 0 {
		cfg.CloudHeight = fc.Cloud.Height
	}

	if cfg.LogLevel == "" && fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if cfg.LogDir == "" && fc.Log.Dir != "" {
		cfg.LogDir = fc.Log.Dir
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
