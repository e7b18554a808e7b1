// keymonitoradv watches the TCA8418 keypad controller fitted to the
// Cardputer ADV and logs every chord event the controller queued.
// The controller hangs off the Grove I2C port, so this runs from any
// host with that port wired, no GPIO matrix involved.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/host/v3"

	"github.com/syurazo/cardputer/config"
	"github.com/syurazo/cardputer/grove"
	"github.com/syurazo/cardputer/keyboard"
	"github.com/syurazo/cardputer/tca8418"
)

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

// poll drains the controller FIFO on every tick. Empty polls send
// nothing; a full channel drops the batch rather than stalling the
// timer.
func poll(state *tca8418.State, interval time.Duration, batches chan<- []tca8418.ChordEvent, logger *logrus.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		events, err := state.Events()
		if err != nil {
			logger.Warnf("reading events: %v", err)
			continue
		}
		if len(events) == 0 {
			continue
		}
		select {
		case batches <- events:
		default:
		}
	}
}

func modString(m keyboard.Modifiers) string {
	var parts []string
	if m.Fn {
		parts = append(parts, "fn")
	}
	if m.Ctrl {
		parts = append(parts, "ctrl")
	}
	if m.Shift {
		parts = append(parts, "shift")
	}
	if m.Alt {
		parts = append(parts, "alt")
	}
	if m.Opt {
		parts = append(parts, "opt")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

func logEvents(logger *logrus.Logger, events []tca8418.ChordEvent) {
	for _, ev := range events {
		fields := logrus.Fields{
			"key":     ev.Key.String(),
			"pressed": ev.Pressed,
			"mods":    modString(ev.Mods),
		}
		if out, ok := ev.Output(); ok {
			fields["output"] = out.String()
		}
		logger.WithFields(fields).Info("chord")
	}
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("keymonitoradv: %v", err)
	}
	logger, logFile, err := setupLogger(cfg)
	if err != nil {
		logrus.Fatalf("keymonitoradv: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if _, err := host.Init(); err != nil {
		logger.Fatalf("keymonitoradv: initializing host: %v", err)
	}
	bus, err := grove.Open(cfg.I2C.Bus, cfg.BusSpeed())
	if err != nil {
		logger.Fatalf("keymonitoradv: %v", err)
	}
	defer bus.Close()

	dev, err := tca8418.New(bus)
	if err != nil {
		logger.Fatalf("keymonitoradv: %v", err)
	}
	defer dev.Halt()

	state := tca8418.NewState(dev)

	batches := make(chan []tca8418.ChordEvent, 8)
	go poll(state, cfg.Interval(), batches, logger)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	logger.Infof("watching %s every %s", dev, cfg.Interval())
	for {
		select {
		case events := <-batches:
			logEvents(logger, events)
		case s := <-sigc:
			logger.Infof("caught %s, shutting down", s)
			return
		default:
			time.Sleep(100 * time.Millisecond)
		}
	}
}
