package tca8418

import "github.com/syurazo/cardputer/keyboard"

// Chord is a key position together with the modifier flags that were
// in effect when it went down.
type Chord struct {
	Key  keyboard.Key
	Mods keyboard.Modifiers
}

// Output resolves the chord through the conversion rule table. ok is
// false for modifier positions, which have no output of their own.
func (c Chord) Output() (keyboard.Output, bool) {
	rule, ok := keyboard.RuleFor(c.Key)
	if !ok {
		return keyboard.Output{}, false
	}
	return rule.Resolve(c.Mods.Fn, c.Mods.Shift), true
}

// ChordEvent is a press or release transition of a chord.
type ChordEvent struct {
	Chord
	Pressed bool
}
