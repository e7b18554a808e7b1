//go:build linux

package evdevscan

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/syurazo/cardputer/keyboard"
)

// keyCodes maps evdev key codes onto the deck's 56 positions. PC
// keyboards have no Fn or Opt that reaches userspace, so RightAlt
// stands in for Fn and the left meta key for Opt: hold RightAlt with
// ; , . / ` or Backspace to reach the Fn layer.
var keyCodes = map[uint16]keyboard.Key{
	evdev.KEY_GRAVE:      keyboard.KeyBackquote,
	evdev.KEY_1:          keyboard.Key1,
	evdev.KEY_2:          keyboard.Key2,
	evdev.KEY_3:          keyboard.Key3,
	evdev.KEY_4:          keyboard.Key4,
	evdev.KEY_5:          keyboard.Key5,
	evdev.KEY_6:          keyboard.Key6,
	evdev.KEY_7:          keyboard.Key7,
	evdev.KEY_8:          keyboard.Key8,
	evdev.KEY_9:          keyboard.Key9,
	evdev.KEY_0:          keyboard.Key0,
	evdev.KEY_MINUS:      keyboard.KeyMinus,
	evdev.KEY_EQUAL:      keyboard.KeyEqual,
	evdev.KEY_BACKSPACE:  keyboard.KeyBackspace,
	evdev.KEY_TAB:        keyboard.KeyTab,
	evdev.KEY_Q:          keyboard.KeyQ,
	evdev.KEY_W:          keyboard.KeyW,
	evdev.KEY_E:          keyboard.KeyE,
	evdev.KEY_R:          keyboard.KeyR,
	evdev.KEY_T:          keyboard.KeyT,
	evdev.KEY_Y:          keyboard.KeyY,
	evdev.KEY_U:          keyboard.KeyU,
	evdev.KEY_I:          keyboard.KeyI,
	evdev.KEY_O:          keyboard.KeyO,
	evdev.KEY_P:          keyboard.KeyP,
	evdev.KEY_LEFTBRACE:  keyboard.KeyOpenBracket,
	evdev.KEY_RIGHTBRACE: keyboard.KeyCloseBracket,
	evdev.KEY_BACKSLASH:  keyboard.KeyBackslash,
	evdev.KEY_RIGHTALT:   keyboard.KeyFn,
	evdev.KEY_LEFTSHIFT:  keyboard.KeyShift,
	evdev.KEY_A:          keyboard.KeyA,
	evdev.KEY_S:          keyboard.KeyS,
	evdev.KEY_D:          keyboard.KeyD,
	evdev.KEY_F:          keyboard.KeyF,
	evdev.KEY_G:          keyboard.KeyG,
	evdev.KEY_H:          keyboard.KeyH,
	evdev.KEY_J:          keyboard.KeyJ,
	evdev.KEY_K:          keyboard.KeyK,
	evdev.KEY_L:          keyboard.KeyL,
	evdev.KEY_SEMICOLON:  keyboard.KeySemicolon,
	evdev.KEY_APOSTROPHE: keyboard.KeyQuote,
	evdev.KEY_ENTER:      keyboard.KeyEnter,
	evdev.KEY_LEFTCTRL:   keyboard.KeyCtrl,
	evdev.KEY_LEFTMETA:   keyboard.KeyOpt,
	evdev.KEY_LEFTALT:    keyboard.KeyAlt,
	evdev.KEY_Z:          keyboard.KeyZ,
	evdev.KEY_X:          keyboard.KeyX,
	evdev.KEY_C:          keyboard.KeyC,
	evdev.KEY_V:          keyboard.KeyV,
	evdev.KEY_B:          keyboard.KeyB,
	evdev.KEY_N:          keyboard.KeyN,
	evdev.KEY_M:          keyboard.KeyM,
	evdev.KEY_COMMA:      keyboard.KeyComma,
	evdev.KEY_DOT:        keyboard.KeyPeriod,
	evdev.KEY_SLASH:      keyboard.KeySlash,
	evdev.KEY_SPACE:      keyboard.KeySpace,
}

func keyFromCode(code uint16) (keyboard.Key, bool) {
	k, ok := keyCodes[code]
	return k, ok
}
