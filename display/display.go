// Package display drives the Cardputer's 1.14 inch ST7789 panel over
// SPI, 240x135 in landscape. Dev implements the Drawer interface from
// periph.io/x/conn/v3/display.
package display

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Panel size in landscape orientation.
const (
	Width  = 240
	Height = 135
)

// The visible area sits inside the controller's 320x240 RAM; these are
// the first visible column and row in landscape.
const (
	colOffset = 41
	rowOffset = 53
)

// ST7789 commands, the subset this panel needs.
const (
	cmdSWReset = 0x01
	cmdSlpOut  = 0x11
	cmdNorOn   = 0x13
	cmdInvOn   = 0x21
	cmdDispOff = 0x28
	cmdDispOn  = 0x29
	cmdCASet   = 0x2A
	cmdRASet   = 0x2B
	cmdRAMWr   = 0x2C
	cmdMadCtl  = 0x36
	cmdColMod  = 0x3A
)

// Row/column exchange plus column flip: landscape with the keyboard
// below the panel.
const madctlLandscape = 0x60

// spidev transfer buffers default to 4 KiB.
const maxTxSize = 4096

// Dev is an open handle to the panel. It is not safe for concurrent
// use.
type Dev struct {
	c    spi.Conn
	dc   gpio.PinOut
	rst  gpio.PinOut
	rect image.Rectangle
	buf  []byte
}

// New connects to the panel on p at 80 MHz, resets it through rst and
// runs the init sequence. dc selects between command and data bytes.
func New(p spi.Port, dc, rst gpio.PinOut) (*Dev, error) {
	c, err := p.Connect(80*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("display: connecting: %w", err)
	}
	d := &Dev{
		c:    c,
		dc:   dc,
		rst:  rst,
		rect: image.Rect(0, 0, Width, Height),
		buf:  make([]byte, Width*Height*2),
	}
	if err := d.reset(); err != nil {
		return nil, err
	}
	if err := d.initPanel(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ST7789{%s}", d.c)
}

// Halt blanks the panel. The RAM contents survive.
func (d *Dev) Halt() error {
	return d.command(cmdDispOff)
}

func (d *Dev) ColorModel() color.Model { return color.RGBAModel }

func (d *Dev) Bounds() image.Rectangle { return d.rect }

// Draw converts the pixels of src covering r to RGB565 and sends them
// to the matching window of the panel. r is clipped to the panel and
// sp moves with the clip.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	clipped := r.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))
	r = clipped
	n := 0
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			cr, cg, cb, _ := src.At(sp.X+x, sp.Y+y).RGBA()
			px := uint16(cr>>11)<<11 | uint16(cg>>10)<<5 | uint16(cb>>11)
			d.buf[n] = byte(px >> 8)
			d.buf[n+1] = byte(px)
			n += 2
		}
	}
	if err := d.setWindow(r); err != nil {
		return err
	}
	if err := d.command(cmdRAMWr); err != nil {
		return err
	}
	return d.data(d.buf[:n])
}

// Fill paints the whole panel in one color.
func (d *Dev) Fill(c color.Color) error {
	return d.Draw(d.rect, image.NewUniform(c), image.Point{})
}

func (d *Dev) reset() error {
	for _, s := range []struct {
		lvl  gpio.Level
		wait time.Duration
	}{
		{gpio.High, 10 * time.Millisecond},
		{gpio.Low, 10 * time.Millisecond},
		{gpio.High, 120 * time.Millisecond},
	} {
		if err := d.rst.Out(s.lvl); err != nil {
			return fmt.Errorf("display: resetting: %w", err)
		}
		time.Sleep(s.wait)
	}
	return nil
}

func (d *Dev) initPanel() error {
	steps := []struct {
		cmd  byte
		data []byte
		wait time.Duration
	}{
		{cmd: cmdSWReset, wait: 150 * time.Millisecond},
		{cmd: cmdSlpOut, wait: 10 * time.Millisecond},
		{cmd: cmdColMod, data: []byte{0x55}}, // 16 bit per pixel
		{cmd: cmdMadCtl, data: []byte{madctlLandscape}},
		{cmd: cmdInvOn}, // this panel wants inverted colors
		{cmd: cmdNorOn},
		{cmd: cmdDispOn, wait: 10 * time.Millisecond},
	}
	for _, s := range steps {
		if err := d.command(s.cmd, s.data...); err != nil {
			return err
		}
		if s.wait > 0 {
			time.Sleep(s.wait)
		}
	}
	return nil
}

func (d *Dev) setWindow(r image.Rectangle) error {
	x0 := r.Min.X + colOffset
	x1 := r.Max.X - 1 + colOffset
	y0 := r.Min.Y + rowOffset
	y1 := r.Max.Y - 1 + rowOffset
	if err := d.command(cmdCASet, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	return d.command(cmdRASet, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

func (d *Dev) command(cmd byte, data ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("display: selecting command: %w", err)
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("display: sending command %#02x: %w", cmd, err)
	}
	if len(data) == 0 {
		return nil
	}
	return d.data(data)
}

func (d *Dev) data(b []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("display: selecting data: %w", err)
	}
	for len(b) > 0 {
		n := len(b)
		if n > maxTxSize {
			n = maxTxSize
		}
		if err := d.c.Tx(b[:n], nil); err != nil {
			return fmt.Errorf("display: sending data: %w", err)
		}
		b = b[n:]
	}
	return nil
}
