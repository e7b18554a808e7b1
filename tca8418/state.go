package tca8418

import (
	"sort"

	"github.com/syurazo/cardputer/keyboard"
)

// State folds the scanner's FIFO events into chord transitions.
//
// Unlike the matrix interpreter, modifier flags here are latched: a
// flag stays set from the modifier's press event until its release
// event, however many polls apart those are. A chord captures the
// flags at press time and a release reports the captured chord, so
// lifting Shift before a key comes back up does not change what the
// release means. State is not safe for concurrent use.
type State struct {
	dev  *Dev
	mods keyboard.Modifiers
	held map[keyboard.Key]Chord
}

// NewState returns an interpreter for dev.
func NewState(dev *Dev) *State {
	return &State{dev: dev, held: make(map[keyboard.Key]Chord)}
}

// Events drains the scanner FIFO and returns the chord transitions it
// produced, in FIFO order. Modifier presses and releases only move the
// flags and produce no event. A release with no matching press is
// dropped.
func (s *State) Events() ([]ChordEvent, error) {
	raw, err := s.dev.Events()
	if err != nil {
		return nil, err
	}
	var events []ChordEvent
	for _, re := range raw {
		if c, ok := s.apply(re); ok {
			events = append(events, ChordEvent{Chord: c, Pressed: re.Pressed})
		}
	}
	return events, nil
}

func (s *State) apply(re RawEvent) (Chord, bool) {
	if flag := s.flagFor(re.Key); flag != nil {
		*flag = re.Pressed
		return Chord{}, false
	}
	if re.Pressed {
		c := Chord{Key: re.Key, Mods: s.mods}
		s.held[re.Key] = c
		return c, true
	}
	c, ok := s.held[re.Key]
	if !ok {
		return Chord{}, false
	}
	delete(s.held, re.Key)
	return c, true
}

func (s *State) flagFor(k keyboard.Key) *bool {
	switch k {
	case keyboard.KeyFn:
		return &s.mods.Fn
	case keyboard.KeyCtrl:
		return &s.mods.Ctrl
	case keyboard.KeyShift:
		return &s.mods.Shift
	case keyboard.KeyAlt:
		return &s.mods.Alt
	case keyboard.KeyOpt:
		return &s.mods.Opt
	}
	return nil
}

// Modifiers returns the latched flags.
func (s *State) Modifiers() keyboard.Modifiers { return s.mods }

// Held returns the chords currently down, ordered by key position.
func (s *State) Held() []Chord {
	if len(s.held) == 0 {
		return nil
	}
	chords := make([]Chord, 0, len(s.held))
	for _, c := range s.held {
		chords = append(chords, c)
	}
	sort.Slice(chords, func(i, j int) bool { return chords[i].Key < chords[j].Key })
	return chords
}
