package keyboard

// State folds a stream of scans into key transitions. The zero value
// is ready to use.
//
// The modifier flags are rebuilt from scratch on every Update, and all
// three query methods resolve against the flags of the latest scan
// only. A release that lands in the same scan as a modifier change
// therefore resolves with the new flags, not the ones in effect when
// the key went down. State is not safe for concurrent use.
type State struct {
	mods     Modifiers
	hold     []ConversionRule
	pressed  []ConversionRule
	released []ConversionRule
}

// Update runs one scan on sc and recomputes the modifier flags and the
// pressed, released and held sets. On a scan error the previous state
// is kept unchanged.
func (s *State) Update(sc Scanner) error {
	keys, err := sc.Scan()
	if err != nil {
		return err
	}
	s.mods = Modifiers{}
	var hold, pressed []ConversionRule
	for _, k := range keys {
		switch k {
		case KeyFn:
			s.mods.Fn = true
		case KeyShift:
			s.mods.Shift = true
		case KeyCtrl:
			s.mods.Ctrl = true
		case KeyAlt:
			s.mods.Alt = true
		case KeyOpt:
			s.mods.Opt = true
		default:
			rule, ok := RuleFor(k)
			if !ok {
				continue
			}
			if !containsRule(s.hold, rule.key) {
				pressed = append(pressed, rule)
			}
			hold = append(hold, rule)
		}
	}
	var released []ConversionRule
	for _, r := range s.hold {
		if !containsRule(hold, r.key) {
			released = append(released, r)
		}
	}
	s.hold = hold
	s.pressed = pressed
	s.released = released
	return nil
}

func containsRule(rules []ConversionRule, k Key) bool {
	for _, r := range rules {
		if r.key == k {
			return true
		}
	}
	return false
}

// Modifiers returns the flags from the latest scan.
func (s *State) Modifiers() Modifiers { return s.mods }

// PressedKeys returns the outputs for keys that went down in the
// latest scan, in scan order.
func (s *State) PressedKeys() []Output { return resolveAll(s.pressed, s.mods) }

// ReleasedKeys returns the outputs for keys that were down in the
// previous scan but not the latest one.
func (s *State) ReleasedKeys() []Output { return resolveAll(s.released, s.mods) }

// HeldKeys returns the outputs for every key down in the latest scan.
func (s *State) HeldKeys() []Output { return resolveAll(s.hold, s.mods) }

func resolveAll(rules []ConversionRule, m Modifiers) []Output {
	if len(rules) == 0 {
		return nil
	}
	outs := make([]Output, len(rules))
	for i, r := range rules {
		outs[i] = r.Resolve(m.Fn, m.Shift)
	}
	return outs
}
