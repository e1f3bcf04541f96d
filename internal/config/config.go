// Package config loads the wiring description for the clock binary: which
// bus the display hangs off, which GPIO lines the motor and encoder use, and
// the time of day to show at power-on. Everything else is compile-time policy.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds hardware wiring parameters for the clock binary.
type Config struct {
	// I2CBus is the bus name or alias the display is attached to. Empty
	// selects the platform's first bus.
	I2CBus string `yaml:"i2c_bus"`
	// DisplayWidth and DisplayHeight are the panel dimensions in pixels.
	DisplayWidth  int `yaml:"display_width"`
	DisplayHeight int `yaml:"display_height"`

	// MotorPin is the GPIO line driving the vibration motor transistor.
	MotorPin string `yaml:"motor_pin"`
	// EncoderCLKPin, EncoderDTPin and ButtonPin are the rotary encoder
	// lines. The button is the encoder's push switch, active low.
	EncoderCLKPin string `yaml:"encoder_clk_pin"`
	EncoderDTPin  string `yaml:"encoder_dt_pin"`
	ButtonPin     string `yaml:"button_pin"`

	// StartTime is the "HH:MM" wall-clock value shown at power-on. There
	// is no battery-backed RTC; the clock always boots at this value.
	StartTime string `yaml:"start_time"`
}

const (
	// DefaultConfigFilename is looked up in the working directory when no
	// path is given.
	DefaultConfigFilename = "table-timer.yaml"

	// DefaultDisplayWidth and DefaultDisplayHeight match the 0.96" panel
	// the device ships with.
	DefaultDisplayWidth  = 128
	DefaultDisplayHeight = 64

	// DefaultStartTime is the boot value when none is configured.
	DefaultStartTime = "12:00"
)

// Pin name defaults for the reference wiring.
const (
	DefaultMotorPin      = "GPIO17"
	DefaultEncoderCLKPin = "GPIO22"
	DefaultEncoderDTPin  = "GPIO27"
	DefaultButtonPin     = "GPIO23"
)

var errSharedPins = errors.New("motor and encoder pins must be distinct")

// Load reads configuration from path, applies defaults and validates. An
// empty path selects DefaultConfigFilename; a missing default file yields the
// built-in defaults rather than an error.
func Load(path string) (*Config, error) {
	usingDefault := path == ""
	if usingDefault {
		path = DefaultConfigFilename
	}

	var cfg Config
	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case usingDefault && os.IsNotExist(err):
		// Run on defaults.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate applies defaults to unset fields and checks the rest.
func Validate(cfg *Config) error {
	if cfg.DisplayWidth == 0 {
		cfg.DisplayWidth = DefaultDisplayWidth
	}
	if cfg.DisplayHeight == 0 {
		cfg.DisplayHeight = DefaultDisplayHeight
	}
	if cfg.DisplayWidth <= 0 || cfg.DisplayHeight <= 0 {
		return fmt.Errorf("invalid display dimensions %dx%d", cfg.DisplayWidth, cfg.DisplayHeight)
	}

	if cfg.MotorPin == "" {
		cfg.MotorPin = DefaultMotorPin
	}
	if cfg.EncoderCLKPin == "" {
		cfg.EncoderCLKPin = DefaultEncoderCLKPin
	}
	if cfg.EncoderDTPin == "" {
		cfg.EncoderDTPin = DefaultEncoderDTPin
	}
	if cfg.ButtonPin == "" {
		cfg.ButtonPin = DefaultButtonPin
	}
	pins := map[string]struct{}{}
	for _, p := range []string{cfg.MotorPin, cfg.EncoderCLKPin, cfg.EncoderDTPin, cfg.ButtonPin} {
		if _, dup := pins[p]; dup {
			return fmt.Errorf("%w: %s", errSharedPins, p)
		}
		pins[p] = struct{}{}
	}

	if cfg.StartTime == "" {
		cfg.StartTime = DefaultStartTime
	}
	if _, _, err := ParseStartTime(cfg.StartTime); err != nil {
		return err
	}
	return nil
}

// ParseStartTime parses a "HH:MM" value into its hour and minute.
func ParseStartTime(s string) (hour, minute int, err error) {
	var parsed int
	if parsed, err = fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil || parsed != 2 {
		return 0, 0, fmt.Errorf("start time %q: want HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("start time %q: out of range", s)
	}
	return hour, minute, nil
}
