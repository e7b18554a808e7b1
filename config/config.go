// Package config loads the TOML configuration shared by the cardputer
// commands. Missing fields keep their defaults, so a config file only
// has to name what differs from a stock setup.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"periph.io/x/conn/v3/physic"
)

// Config is the on-disk configuration.
type Config struct {
	// IntervalMS is the keyboard poll interval in milliseconds.
	IntervalMS int    `toml:"interval_ms"`
	LogFile    string `toml:"log_file"`
	LogLevel   string `toml:"log_level"`

	Matrix  MatrixConfig  `toml:"matrix"`
	I2C     I2CConfig     `toml:"i2c"`
	Evdev   EvdevConfig   `toml:"evdev"`
	Bridge  BridgeConfig  `toml:"bridge"`
	Display DisplayConfig `toml:"display"`
}

// MatrixConfig names the decoder address pins and the column input
// pins, in periph gpioreg notation.
type MatrixConfig struct {
	AddressPins []string `toml:"address_pins"`
	InputPins   []string `toml:"input_pins"`
}

type I2CConfig struct {
	// Bus names the I2C bus with the TCA8418 on it; empty picks the
	// first available bus.
	Bus string `toml:"bus"`
	// SpeedHz clamps the bus clock; 0 keeps the adapter default.
	SpeedHz int64 `toml:"speed_hz"`
}

type EvdevConfig struct {
	Device string `toml:"device"`
}

type BridgeConfig struct {
	UinputPath   string `toml:"uinput_path"`
	KeyboardName string `toml:"keyboard_name"`
}

// DisplayConfig names the ST7789 wiring. Port follows spireg notation;
// empty picks the first available port.
type DisplayConfig struct {
	Port      string `toml:"port"`
	DC        string `toml:"dc_pin"`
	RST       string `toml:"rst_pin"`
	Backlight string `toml:"backlight_pin"`
}

// Default returns the configuration for a stock Cardputer.
func Default() Config {
	return Config{
		IntervalMS: 500,
		LogLevel:   "info",
		Matrix: MatrixConfig{
			AddressPins: []string{"GPIO8", "GPIO9", "GPIO11"},
			InputPins:   []string{"GPIO13", "GPIO15", "GPIO3", "GPIO4", "GPIO5", "GPIO6", "GPIO7"},
		},
		Evdev: EvdevConfig{Device: "/dev/input/event0"},
		Bridge: BridgeConfig{
			UinputPath:   "/dev/uinput",
			KeyboardName: "cardputer-keys",
		},
		Display: DisplayConfig{
			DC:        "GPIO34",
			RST:       "GPIO33",
			Backlight: "GPIO38",
		},
	}
}

// Load reads the file at path over the defaults and validates the
// result. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the fields that would otherwise only fail deep
// inside a command.
func (c *Config) Validate() error {
	if c.IntervalMS <= 0 {
		return fmt.Errorf("config: interval_ms must be positive, got %d", c.IntervalMS)
	}
	if n := len(c.Matrix.AddressPins); n != 3 {
		return fmt.Errorf("config: matrix.address_pins needs 3 pins, got %d", n)
	}
	if n := len(c.Matrix.InputPins); n != 7 {
		return fmt.Errorf("config: matrix.input_pins needs 7 pins, got %d", n)
	}
	if c.I2C.SpeedHz < 0 {
		return fmt.Errorf("config: i2c.speed_hz must not be negative, got %d", c.I2C.SpeedHz)
	}
	if c.Bridge.UinputPath == "" {
		return fmt.Errorf("config: bridge.uinput_path must not be empty")
	}
	return nil
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// BusSpeed returns the I2C clock as a frequency, 0 for the default.
func (c *Config) BusSpeed() physic.Frequency {
	return physic.Frequency(c.I2C.SpeedHz) * physic.Hertz
}
