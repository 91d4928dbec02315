package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/portrait/internal/header"
)

type Config struct {
	// DefaultSubject is the username (or numeric id) opened at startup.
	DefaultSubject string `koanf:"default_subject"`

	// Icons selects the glyph set: "unicode" (default), "nerd" or "none".
	Icons string `koanf:"icons"`

	Header  HeaderConfig  `koanf:"header"`
	Log     LogConfig     `koanf:"log"`
	Gallery GalleryConfig `koanf:"gallery"`
}

// HeaderConfig overrides header gesture thresholds and timings.
// Zero values keep the built-in defaults.
type HeaderConfig struct {
	MinPullDistance float64 `koanf:"min_pull_distance"` // rows of dead zone before a drag counts
	ElasticConstant float64 `koanf:"elastic_constant"`
	ElasticScale    float64 `koanf:"elastic_scale"`
	PullThreshold   float64 `koanf:"pull_threshold"` // rows
	MinVelocity     float64 `koanf:"min_velocity"`   // rows per second

	ExpandMinProgress      float64 `koanf:"expand_min_progress"`
	ExpandCommitProgress   float64 `koanf:"expand_commit_progress"`
	CollapseMaxProgress    float64 `koanf:"collapse_max_progress"`
	CollapseCommitProgress float64 `koanf:"collapse_commit_progress"`

	MinimizeDistance   float64 `koanf:"minimize_distance"`    // scroll rows to fully minimize
	CollapseScrollSlop float64 `koanf:"collapse_scroll_slop"` // scroll rows that close the photo view

	ExpandMS   int `koanf:"expand_ms"`
	CollapseMS int `koanf:"collapse_ms"`
	SnapMS     int `koanf:"snap_ms"`
	FrameMS    int `koanf:"frame_ms"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	File       string `koanf:"file"`  // empty means the XDG state dir
	Level      string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// GalleryConfig controls profile photo loading.
type GalleryConfig struct {
	CacheDir string `koanf:"cache_dir"` // empty means the user cache dir
	NoCache  bool   `koanf:"no_cache"`
}

// Load reads config files in priority order. extra, when set, is loaded last
// and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DefaultSubject = strings.TrimPrefix(strings.TrimSpace(cfg.DefaultSubject), "@")

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	if cfg.Gallery.CacheDir != "" {
		cfg.Gallery.CacheDir = expandPath(cfg.Gallery.CacheDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/portrait/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "portrait", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HeaderTunables returns the header thresholds with overrides applied.
func (c *Config) HeaderTunables() header.Tunables {
	t := header.DefaultTunables()
	h := c.Header

	setFloat := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	setProgress := func(dst *float64, v float64) {
		if v > 0 && v < 1 {
			*dst = v
		}
	}
	setMS := func(dst *time.Duration, ms int) {
		if ms > 0 {
			*dst = time.Duration(ms) * time.Millisecond
		}
	}

	setFloat(&t.MinPullDistance, h.MinPullDistance)
	setFloat(&t.ElasticConstant, h.ElasticConstant)
	setFloat(&t.ElasticScale, h.ElasticScale)
	setFloat(&t.PullThreshold, h.PullThreshold)
	setFloat(&t.MinVelocity, h.MinVelocity)
	setProgress(&t.ExpandMinProgress, h.ExpandMinProgress)
	setProgress(&t.ExpandCommitProgress, h.ExpandCommitProgress)
	setProgress(&t.CollapseMaxProgress, h.CollapseMaxProgress)
	setProgress(&t.CollapseCommitProgress, h.CollapseCommitProgress)
	setFloat(&t.MinimizeDistance, h.MinimizeDistance)
	setFloat(&t.CollapseScrollSlop, h.CollapseScrollSlop)
	setMS(&t.ExpandDuration, h.ExpandMS)
	setMS(&t.CollapseDuration, h.CollapseMS)
	setMS(&t.SnapDuration, h.SnapMS)
	setMS(&t.FrameInterval, h.FrameMS)

	return t
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 28
	}

	return cfg
}
