package keyboard

import "fmt"

// Key names one of the 56 physical key positions. The value is an index
// into the conversion rule table, not a scan code.
type Key uint8

const (
	KeyBackquote Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEqual
	KeyBackspace
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyOpenBracket
	KeyCloseBracket
	KeyBackslash
	KeyFn
	KeyShift
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyQuote
	KeyEnter
	KeyCtrl
	KeyOpt
	KeyAlt
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyPeriod
	KeySlash
	KeySpace

	// KeyCount is the number of physical key positions.
	KeyCount = 56
)

var keyNames = [KeyCount]string{
	"Backquote", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"Minus", "Equal", "Backspace",
	"Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P",
	"OpenBracket", "CloseBracket", "Backslash",
	"Fn", "Shift", "A", "S", "D", "F", "G", "H", "J", "K", "L",
	"Semicolon", "Quote", "Enter",
	"Ctrl", "Opt", "Alt", "Z", "X", "C", "V", "B", "N", "M",
	"Comma", "Period", "Slash", "Space",
}

func (k Key) String() string {
	if int(k) >= len(keyNames) {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// IsModifier reports whether k is one of the five modifier positions.
// Modifiers set flags instead of producing outputs and have no entry in
// the conversion rule table.
func (k Key) IsModifier() bool {
	switch k {
	case KeyFn, KeyShift, KeyCtrl, KeyOpt, KeyAlt:
		return true
	}
	return false
}

// Modifiers is a snapshot of the five modifier flags.
type Modifiers struct {
	Fn    bool
	Ctrl  bool
	Shift bool
	Alt   bool
	Opt   bool
}
