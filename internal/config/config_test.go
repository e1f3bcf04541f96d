package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultDisplayWidth, cfg.DisplayWidth)
	require.Equal(t, DefaultDisplayHeight, cfg.DisplayHeight)
	require.Equal(t, DefaultMotorPin, cfg.MotorPin)
	require.Equal(t, DefaultStartTime, cfg.StartTime)
}

func TestValidateRejectsSharedPins(t *testing.T) {
	t.Parallel()

	cfg := &Config{MotorPin: "GPIO5", EncoderCLKPin: "GPIO5"}
	require.Error(t, Validate(cfg))
}

func TestValidateRejectsBadStartTime(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"25:00", "12:60", "noon", "-1:30"} {
		cfg := &Config{StartTime: s}
		require.Error(t, Validate(cfg), "start time %q", s)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "table-timer.yaml")
	contents := []byte("i2c_bus: \"1\"\nmotor_pin: GPIO26\nstart_time: \"08:30\"\n")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "1", cfg.I2CBus)
	require.Equal(t, "GPIO26", cfg.MotorPin)
	require.Equal(t, "08:30", cfg.StartTime)
	require.Equal(t, DefaultDisplayWidth, cfg.DisplayWidth, "unset fields still default")
}

func TestLoadMissingExplicitPath(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseStartTime(t *testing.T) {
	t.Parallel()

	hour, minute, err := ParseStartTime("08:30")
	require.NoError(t, err)
	require.Equal(t, 8, hour)
	require.Equal(t, 30, minute)

	_, _, err = ParseStartTime("8:75")
	require.Error(t, err)
}
