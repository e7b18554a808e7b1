package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 500*time.Millisecond, c.Interval())
	assert.Equal(t, physic.Frequency(0), c.BusSpeed())
	assert.Len(t, c.Matrix.AddressPins, 3)
	assert.Len(t, c.Matrix.InputPins, 7)
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardputer.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// A file only overrides what it names; everything else keeps the
// defaults.
func TestLoadPartialOverride(t *testing.T) {
	c, err := Load(writeConfig(t, `
interval_ms = 100

[i2c]
bus = "i2c1"
speed_hz = 400000
`))
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, c.Interval())
	assert.Equal(t, "i2c1", c.I2C.Bus)
	assert.Equal(t, 400*physic.KiloHertz, c.BusSpeed())
	assert.Equal(t, Default().Matrix, c.Matrix)
	assert.Equal(t, Default().Bridge, c.Bridge)
	assert.Equal(t, Default().Display, c.Display)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero interval", "interval_ms = 0"},
		{"negative interval", "interval_ms = -5"},
		{"wrong address pin count", "[matrix]\naddress_pins = [\"GPIO8\"]"},
		{"wrong input pin count", "[matrix]\ninput_pins = [\"GPIO13\", \"GPIO15\"]"},
		{"negative bus speed", "[i2c]\nspeed_hz = -1"},
		{"empty uinput path", "[bridge]\nuinput_path = \"\""},
		{"malformed toml", "interval_ms = ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
