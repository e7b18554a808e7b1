// Package tca8418 drives the TI TCA8418 keypad scanner used by the
// Cardputer ADV keyboard. The part scans a 7x8 matrix on its own and
// queues press and release events in an internal FIFO; the host polls
// the FIFO over I2C.
package tca8418

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"

	"github.com/syurazo/cardputer/keyboard"
)

// I2CAddr is the fixed slave address of the scanner.
const I2CAddr uint16 = 0x34

// TxTimeout bounds every register access. The part answers within
// microseconds; a transaction still pending after this long means the
// bus is wedged.
const TxTimeout = 500 * time.Millisecond

// ErrTimeout is returned when a register access does not complete
// within TxTimeout.
var ErrTimeout = errors.New("tca8418: i2c transaction timed out")

// Register map, from the TCA8418 datasheet.
const (
	regCfg       = 0x01 // interrupt enables
	regIntStat   = 0x02 // interrupt status, write to clear
	regKeyLckEC  = 0x03 // lock state and pending event count
	regKeyEventA = 0x04 // head of the event FIFO
	regKPGPIO1   = 0x1D // ROW0-7 keypad enable
	regKPGPIO2   = 0x1E // COL0-7 keypad enable
	regKPGPIO3   = 0x1F // COL8-9 keypad enable
)

const (
	cfgKeyIntEnable = 0x01 // CFG.KE_IEN
	eventCountMask  = 0x0F // KEY_LCK_EC.KEC
	eventKeyMask    = 0x7F
	eventPressedBit = 0x80
	eventEmpty      = 0xFF // FIFO empty sentinel
)

// RawEvent is one FIFO entry, already mapped to a key position.
type RawEvent struct {
	Key     keyboard.Key
	Pressed bool
}

// Dev is a handle to the scanner on an I2C bus. It is not safe for
// concurrent use.
type Dev struct {
	c       i2c.Dev
	timeout time.Duration
}

// New configures the keypad matrix for the Cardputer ADV wiring, rows
// 0-6 and columns 0-7, enables the key event interrupt and clears any
// stale status.
func New(b i2c.Bus) (*Dev, error) {
	d := &Dev{c: i2c.Dev{Bus: b, Addr: I2CAddr}, timeout: TxTimeout}
	setup := []struct{ reg, val byte }{
		{regKPGPIO1, 0x7F},
		{regKPGPIO2, 0xFF},
		{regKPGPIO3, 0x00},
		{regCfg, cfgKeyIntEnable},
		{regIntStat, 0x00},
	}
	for _, s := range setup {
		if err := d.writeReg(s.reg, s.val); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("TCA8418{%s}", d.c.String())
}

// Halt disables the key event interrupt. Events already queued stay in
// the FIFO.
func (d *Dev) Halt() error {
	return d.writeReg(regCfg, 0x00)
}

// EventCount returns how many entries are waiting in the FIFO.
func (d *Dev) EventCount() (int, error) {
	v, err := d.readReg(regKeyLckEC)
	if err != nil {
		return 0, err
	}
	return int(v & eventCountMask), nil
}

// ReadEvent pops one entry off the FIFO. ok is false when the FIFO is
// empty or the entry does not decode to a known key.
func (d *Dev) ReadEvent() (ev RawEvent, ok bool, err error) {
	raw, err := d.readReg(regKeyEventA)
	if err != nil {
		return RawEvent{}, false, err
	}
	if raw == eventEmpty {
		return RawEvent{}, false, nil
	}
	n := int(raw & eventKeyMask)
	idx := n - n/10*2 - 1
	if idx < 0 || idx >= len(keyNumberTable) {
		return RawEvent{}, false, nil
	}
	return RawEvent{Key: keyNumberTable[idx], Pressed: raw&eventPressedBit != 0}, true, nil
}

// Events drains the FIFO. The event count is read once and that many
// entries are popped, in FIFO order. A failure part way through
// discards the whole batch.
func (d *Dev) Events() ([]RawEvent, error) {
	n, err := d.EventCount()
	if err != nil {
		return nil, err
	}
	var events []RawEvent
	for i := 0; i < n; i++ {
		ev, ok, err := d.ReadEvent()
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// tx runs one transaction with a deadline. periph buses have no
// per-transaction timeout, so the call is pushed to a goroutine; on
// timeout the result buffer must be considered undefined.
func (d *Dev) tx(w, r []byte) error {
	done := make(chan error, 1)
	go func() { done <- d.c.Tx(w, r) }()
	t := time.NewTimer(d.timeout)
	defer t.Stop()
	select {
	case err := <-done:
		return err
	case <-t.C:
		return ErrTimeout
	}
}

func (d *Dev) writeReg(reg, val byte) error {
	if err := d.tx([]byte{reg, val}, nil); err != nil {
		return fmt.Errorf("tca8418: writing reg %#02x: %w", reg, err)
	}
	return nil
}

func (d *Dev) readReg(reg byte) (byte, error) {
	buf := make([]byte, 1)
	if err := d.tx([]byte{reg}, buf); err != nil {
		return 0, fmt.Errorf("tca8418: reading reg %#02x: %w", reg, err)
	}
	return buf[0], nil
}
