//go:build linux

// keybridge turns the Cardputer ADV keyboard into a Linux input
// device. Chord events from the TCA8418 are resolved through the
// conversion rules and replayed on a uinput virtual keyboard, so the
// handheld types into whatever has focus.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bendahl/uinput"
	"github.com/sirupsen/logrus"
	"periph.io/x/host/v3"

	"github.com/syurazo/cardputer/config"
	"github.com/syurazo/cardputer/grove"
	"github.com/syurazo/cardputer/keyboard"
	"github.com/syurazo/cardputer/tca8418"
)

// virtualKeyboard is the slice of uinput.Keyboard the forwarder uses.
type virtualKeyboard interface {
	KeyDown(key int) error
	KeyUp(key int) error
}

// pressState remembers what a press actually sent, so its release
// undoes exactly that even after the modifier flags move on.
type pressState struct {
	code int
	mods []int
}

// forwarder replays chord events on the virtual keyboard.
type forwarder struct {
	kb   virtualKeyboard
	down map[keyboard.Key]pressState
}

func newForwarder(kb virtualKeyboard) *forwarder {
	return &forwarder{kb: kb, down: make(map[keyboard.Key]pressState)}
}

func (f *forwarder) forward(ev tca8418.ChordEvent) error {
	if ev.Pressed {
		return f.press(ev)
	}
	return f.release(ev.Key)
}

func (f *forwarder) press(ev tca8418.ChordEvent) error {
	out, ok := ev.Output()
	if !ok {
		return nil
	}
	st, ok := strokeFor(out)
	if !ok {
		return nil
	}
	mods := chordModCodes(ev.Mods, out, st)
	for _, code := range mods {
		if err := f.kb.KeyDown(code); err != nil {
			return fmt.Errorf("pressing modifier %d: %w", code, err)
		}
	}
	if err := f.kb.KeyDown(st.code); err != nil {
		return fmt.Errorf("pressing key %d: %w", st.code, err)
	}
	f.down[ev.Key] = pressState{code: st.code, mods: mods}
	return nil
}

// chordModCodes picks the modifier codes to hold around a stroke. For
// glyphs the conversion rule already folded shift into the glyph, so
// only the stroke's own shift flag counts; for actions like the
// cursors, a held shift passes through.
func chordModCodes(m keyboard.Modifiers, out keyboard.Output, st stroke) []int {
	var mods []int
	if m.Ctrl {
		mods = append(mods, codeLeftCtrl)
	}
	if m.Alt {
		mods = append(mods, codeLeftAlt)
	}
	if m.Opt {
		mods = append(mods, codeLeftMeta)
	}
	if st.shift || (m.Shift && out.Kind != keyboard.OutputGlyph) {
		mods = append(mods, codeLeftShift)
	}
	return mods
}

func (f *forwarder) release(key keyboard.Key) error {
	st, ok := f.down[key]
	if !ok {
		return nil
	}
	delete(f.down, key)
	if err := f.kb.KeyUp(st.code); err != nil {
		return fmt.Errorf("releasing key %d: %w", st.code, err)
	}
	for i := len(st.mods) - 1; i >= 0; i-- {
		if err := f.kb.KeyUp(st.mods[i]); err != nil {
			return fmt.Errorf("releasing modifier %d: %w", st.mods[i], err)
		}
	}
	return nil
}

// releaseAll lifts anything still down, so a dying bridge does not
// leave the focused window with a stuck key.
func (f *forwarder) releaseAll() {
	for key := range f.down {
		f.release(key)
	}
}

func setupLogger(cfg config.Config) (*logrus.Logger, *os.File, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)
	if cfg.LogFile == "" {
		return logger, nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, f))
	return logger, f, nil
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("keybridge: %v", err)
	}
	logger, logFile, err := setupLogger(cfg)
	if err != nil {
		logrus.Fatalf("keybridge: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if _, err := host.Init(); err != nil {
		logger.Fatalf("keybridge: initializing host: %v", err)
	}
	bus, err := grove.Open(cfg.I2C.Bus, cfg.BusSpeed())
	if err != nil {
		logger.Fatalf("keybridge: %v", err)
	}
	defer bus.Close()

	dev, err := tca8418.New(bus)
	if err != nil {
		logger.Fatalf("keybridge: %v", err)
	}
	defer dev.Halt()

	kb, err := uinput.CreateKeyboard(cfg.Bridge.UinputPath, []byte(cfg.Bridge.KeyboardName))
	if err != nil {
		logger.Fatalf("keybridge: creating virtual keyboard: %v", err)
	}
	defer kb.Close()

	state := tca8418.NewState(dev)
	fwd := newForwarder(kb)
	defer fwd.releaseAll()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Interval())
	defer ticker.Stop()

	logger.Infof("bridging %s to %q", dev, cfg.Bridge.KeyboardName)
	for {
		select {
		case <-ticker.C:
			events, err := state.Events()
			if err != nil {
				logger.Warnf("reading events: %v", err)
				continue
			}
			for _, ev := range events {
				if err := fwd.forward(ev); err != nil {
					logger.Warnf("forwarding %v: %v", ev.Key, err)
				}
			}
		case s := <-sigc:
			logger.Infof("caught %s, shutting down", s)
			return
		}
	}
}
