// Package grove opens the Cardputer's HY2.0-4P Grove port as an I2C
// bus.
package grove

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

// Open opens the named I2C bus and clamps it to freq. An empty name
// selects the first available bus; a zero freq keeps the adapter's
// default clock.
func Open(name string, freq physic.Frequency) (i2c.BusCloser, error) {
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("grove: opening bus %q: %w", name, err)
	}
	if freq != 0 {
		if err := b.SetSpeed(freq); err != nil {
			b.Close()
			return nil, fmt.Errorf("grove: setting bus speed: %w", err)
		}
	}
	return b, nil
}
