// Package config loads audit settings from an optional YAML file with
// upward directory discovery, falling back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/geo-audit/backend/audit"
	"github.com/geo-audit/backend/scoring"
)

// configFilenames are probed in order in each directory, current first,
// walking up to the filesystem root.
var configFilenames = []string{"geo.yaml", ".geo.yaml", "geo.config.yaml"}

const (
	DefaultTimeout   = 45 * time.Second
	DefaultUserAgent = "GEOAudit/0.1.0"
	DefaultFormat    = "pretty"
)

// Config holds the tunable audit settings. FailUnder is nil when no
// failure threshold applies.
type Config struct {
	Timeout   time.Duration   `yaml:"-"`
	TimeoutMs int             `yaml:"timeout"`
	UserAgent string          `yaml:"userAgent"`
	Format    string          `yaml:"format"`
	FailUnder *int            `yaml:"failUnder"`
	Weights   scoring.Weights `yaml:"-"`

	RawWeights map[string]float64 `yaml:"weights"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Format:    DefaultFormat,
		Weights:   scoring.DefaultWeights(),
	}
}

// Load reads the config at path, or discovers one upward from the working
// directory when path is empty. A missing file yields the defaults; a
// malformed or invalid file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		path = findConfigFile(cwd)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML config bytes, applying defaults for
// absent fields.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.TimeoutMs < 0 {
		return nil, fmt.Errorf("timeout must be positive, got %d", cfg.TimeoutMs)
	}
	cfg.Timeout = DefaultTimeout
	if cfg.TimeoutMs > 0 {
		cfg.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	switch cfg.Format {
	case "":
		cfg.Format = DefaultFormat
	case "pretty", "json", "md":
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.FailUnder != nil && (*cfg.FailUnder < 0 || *cfg.FailUnder > 100) {
		return nil, fmt.Errorf("failUnder must be between 0 and 100, got %d", *cfg.FailUnder)
	}

	cfg.Weights = scoring.DefaultWeights()
	for key, w := range cfg.RawWeights {
		if w < 0 {
			return nil, fmt.Errorf("weight for %s must be non-negative, got %v", key, w)
		}
		categoryKey := audit.CategoryKey(key)
		if _, known := cfg.Weights[categoryKey]; !known {
			return nil, fmt.Errorf("unknown weight key %q", key)
		}
		cfg.Weights[categoryKey] = w
	}

	return cfg, nil
}

func findConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
