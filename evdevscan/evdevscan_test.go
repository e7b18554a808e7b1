//go:build linux

package evdevscan

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syurazo/cardputer/keyboard"
)

func TestKeyCodesCoverEveryPosition(t *testing.T) {
	seen := map[keyboard.Key]int{}
	for _, k := range keyCodes {
		seen[k]++
	}
	assert.Len(t, seen, keyboard.KeyCount)
	for k, n := range seen {
		assert.Equal(t, 1, n, "key %s", k)
	}
}

func testScanner() *Scanner {
	return &Scanner{
		edges: make(chan edge, 16),
		errs:  make(chan error, 1),
		held:  make(map[keyboard.Key]bool),
	}
}

func TestScanFoldsEdges(t *testing.T) {
	s := testScanner()
	s.edges <- edge{key: keyboard.KeyA, pressed: true}
	s.edges <- edge{key: keyboard.KeyShift, pressed: true}
	s.edges <- edge{key: keyboard.KeyQ, pressed: true}
	s.edges <- edge{key: keyboard.KeyA, pressed: false}

	keys, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []keyboard.Key{keyboard.KeyQ, keyboard.KeyShift}, keys)

	// Nothing new since the last call: same snapshot.
	keys, err = s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []keyboard.Key{keyboard.KeyQ, keyboard.KeyShift}, keys)

	s.edges <- edge{key: keyboard.KeyQ, pressed: false}
	s.edges <- edge{key: keyboard.KeyShift, pressed: false}
	keys, err = s.Scan()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestScanReportsReadError(t *testing.T) {
	s := testScanner()
	s.errs <- io.EOF

	_, err := s.Scan()
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

// The first call must not consume the error and leave later calls
// serving the stale snapshot.
func TestScanErrorIsSticky(t *testing.T) {
	s := testScanner()
	s.held[keyboard.KeyA] = true
	s.errs <- io.EOF

	for i := 0; i < 2; i++ {
		keys, err := s.Scan()
		require.Error(t, err)
		assert.ErrorIs(t, err, io.EOF)
		assert.Nil(t, keys)
	}
}
