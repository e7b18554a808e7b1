package tca8418

import "github.com/syurazo/cardputer/keyboard"

// The scanner reports key number 10*row + col + 1, so with eight
// active columns each decade of ten numbers has two unused slots.
// Folding those out gives the flat index 8*row + col used below:
//
//	idx = n - n/10*2 - 1
//
// keyNumberTable is indexed by that folded value.
var keyNumberTable = [56]keyboard.Key{
	keyboard.KeyBackquote, keyboard.KeyTab, keyboard.KeyFn, keyboard.KeyCtrl,
	keyboard.Key1, keyboard.KeyQ, keyboard.KeyShift, keyboard.KeyOpt,

	keyboard.Key2, keyboard.KeyW, keyboard.KeyA, keyboard.KeyAlt,
	keyboard.Key3, keyboard.KeyE, keyboard.KeyS, keyboard.KeyZ,

	keyboard.Key4, keyboard.KeyR, keyboard.KeyD, keyboard.KeyX,
	keyboard.Key5, keyboard.KeyT, keyboard.KeyF, keyboard.KeyC,

	keyboard.Key6, keyboard.KeyY, keyboard.KeyG, keyboard.KeyV,
	keyboard.Key7, keyboard.KeyU, keyboard.KeyH, keyboard.KeyB,

	keyboard.Key8, keyboard.KeyI, keyboard.KeyJ, keyboard.KeyN,
	keyboard.Key9, keyboard.KeyO, keyboard.KeyK, keyboard.KeyM,

	keyboard.Key0, keyboard.KeyP, keyboard.KeyL, keyboard.KeyComma,
	keyboard.KeyMinus, keyboard.KeyOpenBracket, keyboard.KeySemicolon, keyboard.KeyPeriod,

	keyboard.KeyEqual, keyboard.KeyCloseBracket, keyboard.KeyQuote, keyboard.KeySlash,
	keyboard.KeyBackspace, keyboard.KeyBackslash, keyboard.KeyEnter, keyboard.KeySpace,
}
