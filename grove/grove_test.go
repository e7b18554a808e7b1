package grove

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

type fakeBus struct {
	speed    physic.Frequency
	speedErr error
	closed   bool
}

func (b *fakeBus) String() string                  { return "fake" }
func (b *fakeBus) Tx(uint16, []byte, []byte) error { return nil }
func (b *fakeBus) Close() error                    { b.closed = true; return nil }

func (b *fakeBus) SetSpeed(f physic.Frequency) error {
	if b.speedErr != nil {
		return b.speedErr
	}
	b.speed = f
	return nil
}

func register(t *testing.T, name string, bus *fakeBus) {
	t.Helper()
	err := i2creg.Register(name, nil, -1, func() (i2c.BusCloser, error) {
		return bus, nil
	})
	require.NoError(t, err)
}

func TestOpenSetsSpeed(t *testing.T) {
	bus := &fakeBus{}
	register(t, "grovetest0", bus)

	b, err := Open("grovetest0", 100*physic.KiloHertz)
	require.NoError(t, err)
	assert.Same(t, bus, b)
	assert.Equal(t, 100*physic.KiloHertz, bus.speed)
}

func TestOpenKeepsDefaultSpeed(t *testing.T) {
	bus := &fakeBus{}
	register(t, "grovetest1", bus)

	_, err := Open("grovetest1", 0)
	require.NoError(t, err)
	assert.Equal(t, physic.Frequency(0), bus.speed)
}

func TestOpenSpeedErrorClosesBus(t *testing.T) {
	boom := errors.New("not supported")
	bus := &fakeBus{speedErr: boom}
	register(t, "grovetest2", bus)

	_, err := Open("grovetest2", 400*physic.KiloHertz)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, bus.closed)
}

func TestOpenUnknownBus(t *testing.T) {
	_, err := Open("grovetest-missing", 0)
	assert.Error(t, err)
}
