package keyboard

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Scanner reports the set of keys held down at the moment of the call.
type Scanner interface {
	Scan() ([]Key, error)
}

// MatrixScanner reads the built-in matrix through a 74HC138 decoder.
// It is not safe for concurrent use.
type MatrixScanner struct {
	address [3]gpio.PinOut
	input   [7]gpio.PinIn
}

var _ Scanner = (*MatrixScanner)(nil)

// NewMatrixScanner takes the three decoder address pins and the seven
// column input pins, in order. The inputs are configured with internal
// pull-ups; a held key reads low.
func NewMatrixScanner(a0, a1, a2 gpio.PinOut, y0, y1, y2, y3, y4, y5, y6 gpio.PinIn) (*MatrixScanner, error) {
	m := &MatrixScanner{
		address: [3]gpio.PinOut{a0, a1, a2},
		input:   [7]gpio.PinIn{y0, y1, y2, y3, y4, y5, y6},
	}
	for _, p := range m.input {
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("keyboard: configuring %s: %w", p, err)
		}
	}
	return m, nil
}

// Scan walks all eight decoder addresses and returns the keys held
// down, in scan order. A failure on any pin aborts the whole scan.
func (m *MatrixScanner) Scan() ([]Key, error) {
	var keys []Key
	for i := 0; i < 8; i++ {
		for j, p := range m.address {
			lvl := gpio.Low
			if i&(1<<j) != 0 {
				lvl = gpio.High
			}
			if err := p.Out(lvl); err != nil {
				return nil, fmt.Errorf("keyboard: driving %s: %w", p, err)
			}
		}
		for j, p := range m.input {
			if p.Read() == gpio.High {
				continue
			}
			col, row := columnMap[0][j], i
			if i >= 4 {
				col, row = columnMap[1][j], i-4
			}
			keys = append(keys, matrixKeyMap[row][col])
		}
	}
	return keys, nil
}
