//go:build linux

// keymonitor polls the Cardputer keyboard and logs what each scan
// found. It is the bring-up tool for a fresh wiring: run it, mash
// keys, watch the batches.
//
// With -source=evdev it reads a desk keyboard through evdevscan
// instead of the GPIO matrix, so the interpreter can be exercised
// without the hardware attached.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/syurazo/cardputer/config"
	"github.com/syurazo/cardputer/evdevscan"
	"github.com/syurazo/cardputer/keyboard"
)

// batch is one scan's worth of interpreted keys.
type batch struct {
	pressed  []keyboard.Output
	released []keyboard.Output
	held     []keyboard.Output
}

func (b batch) empty() bool {
	return len(b.pressed) == 0 && len(b.released) == 0 && len(b.held) == 0
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

func pinByName(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	return p, nil
}

// openScanner builds the configured key source. The returned cleanup
// runs at shutdown.
func openScanner(cfg config.Config, source string) (keyboard.Scanner, func(), error) {
	switch source {
	case "matrix":
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("initializing host: %w", err)
		}
		names := append(append([]string{}, cfg.Matrix.AddressPins...), cfg.Matrix.InputPins...)
		pins := make([]gpio.PinIO, len(names))
		for i, name := range names {
			p, err := pinByName(name)
			if err != nil {
				return nil, nil, err
			}
			pins[i] = p
		}
		sc, err := keyboard.NewMatrixScanner(pins[0], pins[1], pins[2],
			pins[3], pins[4], pins[5], pins[6], pins[7], pins[8], pins[9])
		if err != nil {
			return nil, nil, err
		}
		return sc, func() {}, nil
	case "evdev":
		sc, err := evdevscan.Open(cfg.Evdev.Device)
		if err != nil {
			return nil, nil, err
		}
		return sc, func() { sc.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q (want matrix or evdev)", source)
	}
}

// poll scans on every tick and hands the batch to the consumer. A full
// channel drops the batch rather than stalling the timer.
func poll(sc keyboard.Scanner, interval time.Duration, batches chan<- batch, logger *logrus.Logger) {
	var state keyboard.State
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if err := state.Update(sc); err != nil {
			logger.Warnf("scan failed: %v", err)
			continue
		}
		b := batch{
			pressed:  state.PressedKeys(),
			released: state.ReleasedKeys(),
			held:     state.HeldKeys(),
		}
		select {
		case batches <- b:
		default:
		}
	}
}

func outputNames(outs []keyboard.Output) []string {
	names := make([]string, len(outs))
	for i, o := range outs {
		names[i] = o.String()
	}
	return names
}

func logBatch(logger *logrus.Logger, b batch) {
	if b.empty() {
		logger.Debug("idle scan")
		return
	}
	fields := logrus.Fields{}
	if len(b.pressed) > 0 {
		fields["pressed"] = outputNames(b.pressed)
	}
	if len(b.released) > 0 {
		fields["released"] = outputNames(b.released)
	}
	if len(b.held) > 0 {
		fields["held"] = outputNames(b.held)
	}
	logger.WithFields(fields).Info("keys")
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	source := flag.String("source", "matrix", "key source: matrix or evdev")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("keymonitor: %v", err)
	}
	logger, logFile, err := setupLogger(cfg)
	if err != nil {
		logrus.Fatalf("keymonitor: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	sc, cleanup, err := openScanner(cfg, *source)
	if err != nil {
		logger.Fatalf("keymonitor: opening %s source: %v", *source, err)
	}
	defer cleanup()

	batches := make(chan batch, 8)
	go poll(sc, cfg.Interval(), batches, logger)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	logger.Infof("watching %s keyboard every %s", *source, cfg.Interval())
	for {
		select {
		case b := <-batches:
			logBatch(logger, b)
		case s := <-sigc:
			logger.Infof("caught %s, shutting down", s)
			return
		default:
			time.Sleep(100 * time.Millisecond)
		}
	}
}
