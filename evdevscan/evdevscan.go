//go:build linux

// Package evdevscan adapts a Linux evdev keyboard into the Scanner
// interface of the keyboard package, so the interpreters can be driven
// from a desk without Cardputer hardware.
package evdevscan

import (
	"fmt"
	"sort"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/syurazo/cardputer/keyboard"
)

type edge struct {
	key     keyboard.Key
	pressed bool
}

// Scanner folds key events from an evdev device into a held-key set
// and reports a snapshot of it on every Scan. The device is read on an
// internal goroutine; Scan never blocks on it.
type Scanner struct {
	dev   *evdev.InputDevice
	name  string
	edges chan edge
	errs  chan error
	held  map[keyboard.Key]bool
	dead  error
}

var _ keyboard.Scanner = (*Scanner)(nil)

// Open grabs the device at path for exclusive use and starts reading
// it.
func Open(path string) (*Scanner, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evdevscan: opening %s: %w", path, err)
	}
	if err := dev.Grab(); err != nil {
		dev.File.Close()
		return nil, fmt.Errorf("evdevscan: grabbing %s: %w", path, err)
	}
	s := &Scanner{
		dev:   dev,
		name:  dev.Name,
		edges: make(chan edge, 64),
		errs:  make(chan error, 1),
		held:  make(map[keyboard.Key]bool),
	}
	go s.readLoop()
	return s, nil
}

// Name returns the kernel device name.
func (s *Scanner) Name() string { return s.name }

// Close releases the grab and closes the device. The read loop fails
// over to the error channel and exits.
func (s *Scanner) Close() error {
	s.dev.Release()
	return s.dev.File.Close()
}

func (s *Scanner) readLoop() {
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			s.errs <- err
			return
		}
		// Autorepeat events carry value 2 and are not edges.
		if ev.Type != evdev.EV_KEY || ev.Value > 1 {
			continue
		}
		k, ok := keyFromCode(ev.Code)
		if !ok {
			continue
		}
		s.edges <- edge{key: k, pressed: ev.Value == 1}
	}
}

// Scan drains the edges seen since the last call and returns the keys
// currently held, ordered by key position. Once the device read has
// failed, every call reports that error.
func (s *Scanner) Scan() ([]keyboard.Key, error) {
	if s.dead != nil {
		return nil, s.dead
	}
drain:
	for {
		select {
		case err := <-s.errs:
			s.dead = fmt.Errorf("evdevscan: reading %s: %w", s.name, err)
			return nil, s.dead
		case e := <-s.edges:
			if e.pressed {
				s.held[e.key] = true
			} else {
				delete(s.held, e.key)
			}
		default:
			break drain
		}
	}
	if len(s.held) == 0 {
		return nil, nil
	}
	keys := make([]keyboard.Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}
