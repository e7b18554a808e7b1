package backlight

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

type pin struct {
	lvl gpio.Level
	err error
}

func (p *pin) String() string   { return "G38" }
func (p *pin) Halt() error      { return nil }
func (p *pin) Name() string     { return "G38" }
func (p *pin) Number() int      { return 38 }
func (p *pin) Function() string { return "Out" }

func (p *pin) Out(l gpio.Level) error {
	if p.err != nil {
		return p.err
	}
	p.lvl = l
	return nil
}

func (p *pin) PWM(gpio.Duty, physic.Frequency) error { return nil }

func TestOnOff(t *testing.T) {
	p := &pin{}
	b := New(p)

	require.NoError(t, b.On())
	assert.Equal(t, gpio.High, p.lvl)

	require.NoError(t, b.Off())
	assert.Equal(t, gpio.Low, p.lvl)
}

func TestPinError(t *testing.T) {
	boom := errors.New("gpio fault")
	b := New(&pin{err: boom})

	assert.ErrorIs(t, b.On(), boom)
	assert.ErrorIs(t, b.Off(), boom)
}
