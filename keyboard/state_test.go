package keyboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptScanner struct {
	scans []scan
	pos   int
}

type scan struct {
	keys []Key
	err  error
}

func (s *scriptScanner) Scan() ([]Key, error) {
	if s.pos >= len(s.scans) {
		return nil, nil
	}
	sc := s.scans[s.pos]
	s.pos++
	return sc.keys, sc.err
}

func TestStatePressHoldRelease(t *testing.T) {
	sc := &scriptScanner{scans: []scan{
		{keys: []Key{KeyA}},
		{keys: []Key{KeyA}},
		{},
	}}
	var st State

	require.NoError(t, st.Update(sc))
	assert.Equal(t, []Output{glyph('a')}, st.PressedKeys())
	assert.Equal(t, []Output{glyph('a')}, st.HeldKeys())
	assert.Empty(t, st.ReleasedKeys())

	// A key held across scans is reported pressed only once.
	require.NoError(t, st.Update(sc))
	assert.Empty(t, st.PressedKeys())
	assert.Equal(t, []Output{glyph('a')}, st.HeldKeys())
	assert.Empty(t, st.ReleasedKeys())

	require.NoError(t, st.Update(sc))
	assert.Empty(t, st.PressedKeys())
	assert.Empty(t, st.HeldKeys())
	assert.Equal(t, []Output{glyph('a')}, st.ReleasedKeys())
}

// The flags are recomputed every cycle, so dropping Shift while a key
// stays held changes what the held and released queries report.
func TestStateShiftIsNotLatched(t *testing.T) {
	sc := &scriptScanner{scans: []scan{
		{keys: []Key{KeyShift, KeyA}},
		{keys: []Key{KeyA}},
		{},
	}}
	var st State

	require.NoError(t, st.Update(sc))
	assert.Equal(t, []Output{glyph('A')}, st.PressedKeys())
	assert.True(t, st.Modifiers().Shift)

	require.NoError(t, st.Update(sc))
	assert.Equal(t, []Output{glyph('a')}, st.HeldKeys())
	assert.False(t, st.Modifiers().Shift)

	require.NoError(t, st.Update(sc))
	assert.Equal(t, []Output{glyph('a')}, st.ReleasedKeys())
}

func TestStateModifierFlags(t *testing.T) {
	sc := &scriptScanner{scans: []scan{
		{keys: []Key{KeyFn, KeyCtrl, KeyShift, KeyAlt, KeyOpt}},
		{},
	}}
	var st State

	require.NoError(t, st.Update(sc))
	assert.Equal(t, Modifiers{Fn: true, Ctrl: true, Shift: true, Alt: true, Opt: true}, st.Modifiers())
	// Modifiers alone produce no outputs.
	assert.Empty(t, st.PressedKeys())
	assert.Empty(t, st.HeldKeys())

	require.NoError(t, st.Update(sc))
	assert.Equal(t, Modifiers{}, st.Modifiers())
}

func TestStateFnCursor(t *testing.T) {
	sc := &scriptScanner{scans: []scan{
		{keys: []Key{KeyFn, KeySemicolon}},
	}}
	var st State

	require.NoError(t, st.Update(sc))
	assert.Equal(t, []Output{action(OutputCursorUp)}, st.PressedKeys())
}

func TestStateScanErrorKeepsState(t *testing.T) {
	boom := errors.New("gpio fault")
	sc := &scriptScanner{scans: []scan{
		{keys: []Key{KeyShift, KeyA}},
		{err: boom},
	}}
	var st State

	require.NoError(t, st.Update(sc))
	err := st.Update(sc)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []Output{glyph('A')}, st.HeldKeys())
	assert.True(t, st.Modifiers().Shift)
}
