package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwulff/neatface-go/internal/host"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NEATFACE_CONFIG", "NEATFACE_LOCALE", "NEATFACE_DB", "NEATFACE_DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en-US", cfg.Face.Locale)
	assert.Equal(t, "12h", cfg.Face.ClockDisplay)
	assert.Equal(t, 80, cfg.Simulation.BatteryLevel)
	assert.Equal(t, 10*time.Minute, cfg.Simulation.BatteryDrain.Duration)
	assert.Equal(t, time.Second, cfg.Simulation.HeartRateInterval.Duration)
	assert.True(t, strings.HasSuffix(cfg.Storage.Path, filepath.Join("neatface", "settings.db")))
	require.NoError(t, cfg.Validate())
}

func TestLoadFromReader(t *testing.T) {
	clearEnv(t)
	input := `
log_level = "debug"
[face]
locale = "fr-FR"
clock_display = "24h"
[permissions]
heart_rate = false
[simulation]
battery_level = 35
battery_drain = "0s"
heart_rate_interval = "500ms"
steps = 12
`
	cfg, err := LoadFromReader(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "fr-FR", cfg.Face.Locale)
	assert.Equal(t, "24h", cfg.Face.ClockDisplay)
	assert.False(t, cfg.Permissions.HeartRate)
	assert.True(t, cfg.Permissions.Activity)
	assert.Equal(t, 35, cfg.Simulation.BatteryLevel)
	assert.Zero(t, cfg.Simulation.BatteryDrain.Duration)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulation.HeartRateInterval.Duration)
	assert.Equal(t, 12, cfg.Simulation.Steps)
	// Unset values keep their defaults.
	assert.Equal(t, 1650, cfg.Simulation.Calories)
}

func TestLoadFromReaderInvalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name  string
		input string
	}{
		{"bad toml", "log_level = "},
		{"bad duration", "[simulation]\nbattery_drain = \"soon\""},
		{"negative duration", "[simulation]\nheart_rate_interval = \"-1s\""},
		{"clock display", "[face]\nclock_display = \"13h\""},
		{"battery range", "[simulation]\nbattery_level = 120"},
		{"zero heart rate base", "[simulation]\nheart_rate_base = 0"},
		{"negative heart rate base", "[simulation]\nheart_rate_base = -60"},
		{"log level", "log_level = \"loud\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEATFACE_LOCALE", "de-DE")
	t.Setenv("NEATFACE_DB", "/tmp/face.db")
	t.Setenv("NEATFACE_DEBUG", "1")

	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "de-DE", cfg.Face.Locale)
	assert.Equal(t, "/tmp/face.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Face, cfg.Face)
}

func TestLoadUsesConfigEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[face]\nlocale = \"ja-JP\"\n"), 0o644))
	t.Setenv("NEATFACE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ja-JP", cfg.Face.Locale)
}

func TestSim(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Permissions.Activity = false
	cfg.Face.ClockDisplay = "24h"

	sc := cfg.Sim(nil)
	assert.Equal(t, host.Clock24h, sc.ClockDisplay)
	assert.Equal(t, []host.Permission{host.PermissionHeartRate}, sc.Permissions)
	assert.Equal(t, 80, sc.BatteryLevel)
	assert.Equal(t, 68, sc.HeartRateBase)
	assert.True(t, sc.Worn)
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90s")))
	assert.Equal(t, 90*time.Second, d.Duration)

	out, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(out))

	require.NoError(t, d.UnmarshalText(nil))
	assert.Zero(t, d.Duration)
}

func TestStoragePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Storage.Path = "~/faces/settings.db"
	assert.Equal(t, filepath.Join(home, "faces", "settings.db"), cfg.StoragePath())

	cfg.Storage.Path = "/var/lib/neatface.db"
	assert.Equal(t, "/var/lib/neatface.db", cfg.StoragePath())
}
