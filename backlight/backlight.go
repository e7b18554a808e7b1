// Package backlight controls the display backlight pin.
package backlight

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Backlight drives the panel backlight, full on or full off. The
// Cardputer has no PWM dimming on this pin.
type Backlight struct {
	pin gpio.PinOut
}

// New wraps pin. The pin is left untouched until On or Off is called.
func New(pin gpio.PinOut) *Backlight {
	return &Backlight{pin: pin}
}

func (b *Backlight) On() error {
	if err := b.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("backlight: %w", err)
	}
	return nil
}

func (b *Backlight) Off() error {
	if err := b.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("backlight: %w", err)
	}
	return nil
}
