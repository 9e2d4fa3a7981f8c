package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lbatteau/gazette/internal/gallery"
)

type Config struct {
	FeedDir string `koanf:"feed_dir"` // directory of per-post TOML files
	BaseURL string `koanf:"base_url"` // share links are built against this
	Icons   string `koanf:"icons"`    // "nerd", "unicode", or "none"
	Accent  string `koanf:"accent"`   // hex color overriding the theme accent

	Layout LayoutConfig `koanf:"layout"`
	Scroll ScrollConfig `koanf:"scroll"`
}

// LayoutConfig holds the masonry grid parameters. Values are layout units;
// zero values fall back to the engine defaults (8/16).
type LayoutConfig struct {
	RowHeight float64 `koanf:"row_height"`
	RowGap    float64 `koanf:"row_gap"`
	Columns   int     `koanf:"columns"` // images per grid row (default: 3)
}

// ScrollConfig tunes the smooth-scroll animation.
type ScrollConfig struct {
	DurationMs int `koanf:"duration_ms"` // animation length (default: 300)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in feed_dir
	if cfg.FeedDir != "" {
		cfg.FeedDir = expandPath(cfg.FeedDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{
		filepath.Join(xdg.ConfigHome, "gazette", "config.toml"),
	}

	// ./config.toml (pwd, highest priority)
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

// GalleryParams returns the masonry parameters with engine defaults applied
// for unset values. Read fresh by the layout engine on each computation so a
// reloaded config takes effect without remounting.
func (c *Config) GalleryParams() gallery.Params {
	p := gallery.Params{RowHeight: c.Layout.RowHeight, RowGap: c.Layout.RowGap}
	if p.RowHeight <= 0 {
		p.RowHeight = gallery.DefaultRowHeight
	}
	if p.RowGap <= 0 {
		p.RowGap = gallery.DefaultRowGap
	}
	return p
}

// Columns returns the configured grid column count, defaulting to 3.
func (c *Config) Columns() int {
	if c.Layout.Columns <= 0 {
		return 3
	}
	return c.Layout.Columns
}

// ScrollDuration returns the smooth-scroll animation length in
// milliseconds, defaulting to 300.
func (c *Config) ScrollDuration() int {
	if c.Scroll.DurationMs <= 0 {
		return 300
	}
	return c.Scroll.DurationMs
}

// HasBaseURL returns true if share-link construction is configured.
func (c *Config) HasBaseURL() bool {
	return c.BaseURL != ""
}
