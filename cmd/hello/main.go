// hello smoke-tests a freshly wired panel: backlight on, greeting on
// screen. If you can read the text, the SPI wiring, the reset pulse
// and the panel offsets are all good.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/syurazo/cardputer/backlight"
	"github.com/syurazo/cardputer/config"
	"github.com/syurazo/cardputer/display"
)

func outPin(name string) (gpio.PinOut, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	return p, nil
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	text := flag.String("text", "Hello, world!", "text to draw")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("hello: %v", err)
	}

	if _, err := host.Init(); err != nil {
		logrus.Fatalf("hello: initializing host: %v", err)
	}
	port, err := spireg.Open(cfg.Display.Port)
	if err != nil {
		logrus.Fatalf("hello: opening SPI port: %v", err)
	}
	defer port.Close()

	dc, err := outPin(cfg.Display.DC)
	if err != nil {
		logrus.Fatalf("hello: %v", err)
	}
	rst, err := outPin(cfg.Display.RST)
	if err != nil {
		logrus.Fatalf("hello: %v", err)
	}
	blPin, err := outPin(cfg.Display.Backlight)
	if err != nil {
		logrus.Fatalf("hello: %v", err)
	}

	d, err := display.New(port, dc, rst)
	if err != nil {
		logrus.Fatalf("hello: %v", err)
	}
	if err := backlight.New(blPin).On(); err != nil {
		logrus.Fatalf("hello: %v", err)
	}

	frame := image.NewRGBA(d.Bounds())
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	(&font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(16, display.Height/2),
	}).DrawString(*text)

	if err := d.Draw(d.Bounds(), frame, image.Point{}); err != nil {
		logrus.Fatalf("hello: drawing: %v", err)
	}
	logrus.Infof("%s says %q", d, *text)
}
