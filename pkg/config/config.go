// Package config loads the application configuration from a TOML
// file. A missing file yields working defaults so the binary runs
// with zero setup; only malformed TOML is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level application configuration.
type Config struct {
	// OutputDir is prepended to relative card output paths.
	OutputDir string `toml:"output_dir"`
	// Palette names the palette used when a review names none.
	// Empty means the built-in default.
	Palette string `toml:"palette"`
	// LogoDir is where platform badge logos are read from.
	LogoDir string `toml:"logo_dir"`

	Fonts  FontsConfig  `toml:"fonts"`
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
	Watch  WatchConfig  `toml:"watch"`
}

// FontsConfig lists font candidates per slot, tried in order. Each
// candidate is a file path or a "google:FAMILY:WEIGHT" spec.
type FontsConfig struct {
	Regular  []string `toml:"regular"`
	Bold     []string `toml:"bold"`
	CacheDir string   `toml:"cache_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `toml:"level"`
	// File enables rotating file output when set; empty logs to stderr.
	File string `toml:"file"`
	// MaxSizeMB is the maximum log file size before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// MaxUploadMB bounds asset uploads.
	MaxUploadMB int `toml:"max_upload_mb"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	// PollSeconds is the scan interval when native file events are
	// unavailable.
	PollSeconds int `toml:"poll_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cacheDir := ""
	if base, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(base, "bakuretsu", "fonts")
	}
	return &Config{
		LogoDir: "assets/logos",
		Fonts:   FontsConfig{CacheDir: cacheDir},
		Log:     LogConfig{Level: "info", MaxSizeMB: 10},
		Server:  ServerConfig{Addr: ":8080", MaxUploadMB: 8},
		Watch:   WatchConfig{PollSeconds: 2},
	}
}

// Load reads the configuration at path. A missing file returns
// Default; present files are decoded on top of the defaults so
// omitted fields keep their built-in values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Example returns a starter configuration file.
func Example() string {
	return `# Bakuretsu configuration. Every field is optional.

# output_dir = "cards"          # prepended to relative output paths
# palette = "Bakuretsu Dark"    # default palette, see: bakuretsu palettes
# logo_dir = "assets/logos"     # platform badge logos

[fonts]
# Candidates are tried in order; file paths or google:FAMILY:WEIGHT.
# regular = ["fonts/Inter.ttf", "google:Inter:400"]
# bold = ["google:Inter:800"]
# cache_dir = ""                # downloaded font cache

[log]
level = "info"                  # trace | debug | info | warn | error
# file = "bakuretsu.log"        # rotating file instead of stderr
max_size_mb = 10

[server]
addr = ":8080"
max_upload_mb = 8

[watch]
poll_seconds = 2
`
}
