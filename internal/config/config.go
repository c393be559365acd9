// Package config provides TOML-based configuration for the neatface CLI and
// its simulated host.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jwulff/neatface-go/internal/host"
	"github.com/jwulff/neatface-go/internal/host/sim"
)

// Config is the top-level configuration.
type Config struct {
	LogLevel    string            `toml:"log_level"`
	Face        FaceConfig        `toml:"face"`
	Storage     StorageConfig     `toml:"storage"`
	Permissions PermissionsConfig `toml:"permissions"`
	Simulation  SimulationConfig  `toml:"simulation"`
}

// FaceConfig holds the user preferences the host would normally provide.
type FaceConfig struct {
	Locale       string `toml:"locale"`
	ClockDisplay string `toml:"clock_display"`
	// Layout is an optional YAML layout path; empty uses the built-in face.
	Layout string `toml:"layout"`
}

// StorageConfig locates the settings database.
type StorageConfig struct {
	Path string `toml:"path"`
}

// PermissionsConfig lists the runtime permissions granted to the face.
type PermissionsConfig struct {
	HeartRate bool `toml:"heart_rate"`
	Activity  bool `toml:"activity"`
}

// SimulationConfig drives the simulated sensors.
type SimulationConfig struct {
	BatteryLevel      int      `toml:"battery_level"`
	BatteryDrain      Duration `toml:"battery_drain"`
	HeartRateInterval Duration `toml:"heart_rate_interval"`
	HeartRateBase     int      `toml:"heart_rate_base"`
	Steps             int      `toml:"steps"`
	Calories          int      `toml:"calories"`
	Worn              bool     `toml:"worn"`
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $NEATFACE_CONFIG
//  2. $XDG_CONFIG_HOME/neatface/config.toml
//  3. ~/.config/neatface/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		LogLevel: "info",
		Face: FaceConfig{
			Locale:       "en-US",
			ClockDisplay: string(host.Clock12h),
		},
		Storage: StorageConfig{
			Path: filepath.Join(xdgDataHome(home), "neatface", "settings.db"),
		},
		Permissions: PermissionsConfig{
			HeartRate: true,
			Activity:  true,
		},
		Simulation: SimulationConfig{
			BatteryLevel:      80,
			BatteryDrain:      Duration{10 * time.Minute},
			HeartRateInterval: Duration{time.Second},
			HeartRateBase:     68,
			Steps:             4200,
			Calories:          1650,
			Worn:              true,
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch host.ClockDisplay(c.Face.ClockDisplay) {
	case host.Clock12h, host.Clock24h:
	default:
		return fmt.Errorf("face.clock_display must be 12h or 24h, got %q", c.Face.ClockDisplay)
	}
	if c.Simulation.BatteryLevel < 0 || c.Simulation.BatteryLevel > 100 {
		return fmt.Errorf("simulation.battery_level must be 0-100, got %d", c.Simulation.BatteryLevel)
	}
	if c.Simulation.HeartRateBase <= 0 {
		return fmt.Errorf("simulation.heart_rate_base must be positive, got %d", c.Simulation.HeartRateBase)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// Granted lists the permissions enabled in the config.
func (c *Config) Granted() []host.Permission {
	var perms []host.Permission
	if c.Permissions.HeartRate {
		perms = append(perms, host.PermissionHeartRate)
	}
	if c.Permissions.Activity {
		perms = append(perms, host.PermissionActivity)
	}
	return perms
}

// StoragePath returns Storage.Path with a leading ~ expanded.
func (c *Config) StoragePath() string {
	return expandHome(c.Storage.Path)
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Sim builds the simulated device configuration.
func (c *Config) Sim(logger *slog.Logger) sim.Config {
	return sim.Config{
		Locale:            c.Face.Locale,
		ClockDisplay:      host.ClockDisplay(c.Face.ClockDisplay),
		BatteryLevel:      c.Simulation.BatteryLevel,
		BatteryDrain:      c.Simulation.BatteryDrain.Duration,
		HeartRateInterval: c.Simulation.HeartRateInterval.Duration,
		HeartRateBase:     c.Simulation.HeartRateBase,
		Steps:             c.Simulation.Steps,
		Calories:          c.Simulation.Calories,
		Permissions:       c.Granted(),
		Worn:              c.Simulation.Worn,
		Logger:            logger,
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NEATFACE_LOCALE"); v != "" {
		cfg.Face.Locale = v
	}
	if v := os.Getenv("NEATFACE_DB"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("NEATFACE_DEBUG"); v == "1" || v == "true" {
		cfg.LogLevel = "debug"
	}
}

func configSearchPaths() []string {
	var paths []string
	if p := os.Getenv("NEATFACE_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "neatface", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "neatface", "config.toml"))
	}
	return paths
}

func xdgDataHome(home string) string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "share")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
