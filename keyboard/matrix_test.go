package keyboard

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

type outPin struct {
	name string
	lvl  gpio.Level
	err  error
}

func (p *outPin) String() string   { return p.name }
func (p *outPin) Halt() error      { return nil }
func (p *outPin) Name() string     { return p.name }
func (p *outPin) Number() int      { return 0 }
func (p *outPin) Function() string { return "Out" }

func (p *outPin) Out(l gpio.Level) error {
	if p.err != nil {
		return p.err
	}
	p.lvl = l
	return nil
}

func (p *outPin) PWM(gpio.Duty, physic.Frequency) error { return nil }

type inPin struct {
	name  string
	pull  gpio.Pull
	read  func() gpio.Level
	inErr error
}

func (p *inPin) String() string   { return p.name }
func (p *inPin) Halt() error      { return nil }
func (p *inPin) Name() string     { return p.name }
func (p *inPin) Number() int      { return 0 }
func (p *inPin) Function() string { return "In" }

func (p *inPin) In(pull gpio.Pull, edge gpio.Edge) error {
	if p.inErr != nil {
		return p.inErr
	}
	p.pull = pull
	return nil
}

func (p *inPin) Read() gpio.Level               { return p.read() }
func (p *inPin) WaitForEdge(time.Duration) bool { return false }
func (p *inPin) Pull() gpio.Pull                { return p.pull }
func (p *inPin) DefaultPull() gpio.Pull         { return gpio.PullUp }

// rig emulates the decoder and matrix behind the pins: the input pins
// answer according to the driven address and the set of keys down.
type rig struct {
	addr [3]*outPin
	in   [7]*inPin
	down map[Key]bool
}

func newRig() *rig {
	r := &rig{down: map[Key]bool{}}
	for i := range r.addr {
		r.addr[i] = &outPin{name: fmt.Sprintf("A%d", i)}
	}
	for j := range r.in {
		j := j
		r.in[j] = &inPin{name: fmt.Sprintf("Y%d", j), read: func() gpio.Level { return r.level(j) }}
	}
	return r
}

func (r *rig) address() int {
	n := 0
	for i, p := range r.addr {
		if p.lvl == gpio.High {
			n |= 1 << i
		}
	}
	return n
}

func (r *rig) level(j int) gpio.Level {
	i := r.address()
	col, row := columnMap[0][j], i
	if i >= 4 {
		col, row = columnMap[1][j], i-4
	}
	if r.down[matrixKeyMap[row][col]] {
		return gpio.Low
	}
	return gpio.High
}

func (r *rig) scanner(t *testing.T) *MatrixScanner {
	t.Helper()
	m, err := NewMatrixScanner(r.addr[0], r.addr[1], r.addr[2],
		r.in[0], r.in[1], r.in[2], r.in[3], r.in[4], r.in[5], r.in[6])
	require.NoError(t, err)
	return m
}

func TestNewMatrixScannerConfiguresPullUps(t *testing.T) {
	r := newRig()
	r.scanner(t)
	for _, p := range r.in {
		assert.Equal(t, gpio.PullUp, p.pull, "%s", p.name)
	}
}

func TestNewMatrixScannerInputError(t *testing.T) {
	r := newRig()
	r.in[3].inErr = errors.New("busy")
	_, err := NewMatrixScanner(r.addr[0], r.addr[1], r.addr[2],
		r.in[0], r.in[1], r.in[2], r.in[3], r.in[4], r.in[5], r.in[6])
	require.Error(t, err)
	assert.ErrorContains(t, err, "Y3")
}

func TestScanIdle(t *testing.T) {
	r := newRig()
	keys, err := r.scanner(t).Scan()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// Every single key must come back from the position it is wired to.
func TestScanEachKey(t *testing.T) {
	r := newRig()
	m := r.scanner(t)
	for k := Key(0); k < KeyCount; k++ {
		r.down = map[Key]bool{k: true}
		keys, err := m.Scan()
		require.NoError(t, err)
		assert.Equal(t, []Key{k}, keys)
	}
}

func TestScanChord(t *testing.T) {
	r := newRig()
	r.down = map[Key]bool{KeyShift: true, KeyA: true, KeySpace: true}
	keys, err := r.scanner(t).Scan()
	require.NoError(t, err)
	assert.ElementsMatch(t, []Key{KeyShift, KeyA, KeySpace}, keys)
}

// Addresses are walked in order, so the odd column half of the matrix
// is reported before the even one.
func TestScanOrder(t *testing.T) {
	r := newRig()
	r.down = map[Key]bool{KeyCtrl: true, KeyOpt: true}
	keys, err := r.scanner(t).Scan()
	require.NoError(t, err)
	assert.Equal(t, []Key{KeyOpt, KeyCtrl}, keys)
}

func TestScanDriveError(t *testing.T) {
	r := newRig()
	r.down = map[Key]bool{KeyA: true}
	boom := errors.New("gpio fault")
	r.addr[1].err = boom
	keys, err := r.scanner(t).Scan()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, keys)
}
