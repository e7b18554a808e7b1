package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Backquote", KeyBackquote.String())
	assert.Equal(t, "5", Key5.String())
	assert.Equal(t, "Shift", KeyShift.String())
	assert.Equal(t, "Space", KeySpace.String())
	assert.Equal(t, "Key(99)", Key(99).String())
}

func TestIsModifier(t *testing.T) {
	mods := []Key{KeyFn, KeyShift, KeyCtrl, KeyOpt, KeyAlt}
	for _, k := range mods {
		assert.True(t, k.IsModifier(), "%s", k)
	}
	for k := Key(0); k < KeyCount; k++ {
		if !k.IsModifier() {
			continue
		}
		assert.Contains(t, mods, k)
	}
}

// Every key position must appear exactly once in the matrix map, and
// the two column halves must partition the 14 columns.
func TestMatrixKeyMapComplete(t *testing.T) {
	seen := map[Key]int{}
	for _, row := range matrixKeyMap {
		for _, k := range row {
			seen[k]++
		}
	}
	assert.Len(t, seen, KeyCount)
	for k, n := range seen {
		assert.Equal(t, 1, n, "key %s", k)
	}
}

func TestColumnMapComplete(t *testing.T) {
	seen := map[int]int{}
	for _, half := range columnMap {
		for _, col := range half {
			seen[col]++
		}
	}
	assert.Len(t, seen, 14)
	for col, n := range seen {
		assert.Equal(t, 1, n, "column %d", col)
	}
}
