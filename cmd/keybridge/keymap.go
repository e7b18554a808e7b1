//go:build linux

package main

import "github.com/syurazo/cardputer/keyboard"

// Key codes from linux/input-event-codes.h.
const (
	codeEsc        = 1
	code1          = 2
	code2          = 3
	code3          = 4
	code4          = 5
	code5          = 6
	code6          = 7
	code7          = 8
	code8          = 9
	code9          = 10
	code0          = 11
	codeMinus      = 12
	codeEqual      = 13
	codeBackspace  = 14
	codeTab        = 15
	codeQ          = 16
	codeW          = 17
	codeE          = 18
	codeR          = 19
	codeT          = 20
	codeY          = 21
	codeU          = 22
	codeI          = 23
	codeO          = 24
	codeP          = 25
	codeLeftBrace  = 26
	codeRightBrace = 27
	codeEnter      = 28
	codeLeftCtrl   = 29
	codeA          = 30
	codeS          = 31
	codeD          = 32
	codeF          = 33
	codeG          = 34
	codeH          = 35
	codeJ          = 36
	codeK          = 37
	codeL          = 38
	codeSemicolon  = 39
	codeApostrophe = 40
	codeGrave      = 41
	codeLeftShift  = 42
	codeBackslash  = 43
	codeZ          = 44
	codeX          = 45
	codeC          = 46
	codeV          = 47
	codeB          = 48
	codeN          = 49
	codeM          = 50
	codeComma      = 51
	codeDot        = 52
	codeSlash      = 53
	codeLeftAlt    = 56
	codeSpace      = 57
	codeUp         = 103
	codeLeft       = 105
	codeRight      = 106
	codeDown       = 108
	codeDelete     = 111
	codeLeftMeta   = 125
)

// stroke is one virtual key event: the code to emit and whether a
// shift press wraps it.
type stroke struct {
	code  int
	shift bool
}

// glyphStrokes maps every glyph the conversion rules produce to the
// stroke that types it on a US-layout virtual keyboard.
var glyphStrokes = map[rune]stroke{
	// Number row
	'`': {codeGrave, false}, '~': {codeGrave, true},
	'1': {code1, false}, '!': {code1, true},
	'2': {code2, false}, '@': {code2, true},
	'3': {code3, false}, '#': {code3, true},
	'4': {code4, false}, '$': {code4, true},
	'5': {code5, false}, '%': {code5, true},
	'6': {code6, false}, '^': {code6, true},
	'7': {code7, false}, '&': {code7, true},
	'8': {code8, false}, '*': {code8, true},
	'9': {code9, false}, '(': {code9, true},
	'0': {code0, false}, ')': {code0, true},
	'-': {codeMinus, false}, '_': {codeMinus, true},
	'=': {codeEqual, false}, '+': {codeEqual, true},

	// Top row
	'q': {codeQ, false}, 'Q': {codeQ, true},
	'w': {codeW, false}, 'W': {codeW, true},
	'e': {codeE, false}, 'E': {codeE, true},
	'r': {codeR, false}, 'R': {codeR, true},
	't': {codeT, false}, 'T': {codeT, true},
	'y': {codeY, false}, 'Y': {codeY, true},
	'u': {codeU, false}, 'U': {codeU, true},
	'i': {codeI, false}, 'I': {codeI, true},
	'o': {codeO, false}, 'O': {codeO, true},
	'p': {codeP, false}, 'P': {codeP, true},
	'[': {codeLeftBrace, false}, '{': {codeLeftBrace, true},
	']': {codeRightBrace, false}, '}': {codeRightBrace, true},
	'\\': {codeBackslash, false}, '|': {codeBackslash, true},

	// Home row
	'a': {codeA, false}, 'A': {codeA, true},
	's': {codeS, false}, 'S': {codeS, true},
	'd': {codeD, false}, 'D': {codeD, true},
	'f': {codeF, false}, 'F': {codeF, true},
	'g': {codeG, false}, 'G': {codeG, true},
	'h': {codeH, false}, 'H': {codeH, true},
	'j': {codeJ, false}, 'J': {codeJ, true},
	'k': {codeK, false}, 'K': {codeK, true},
	'l': {codeL, false}, 'L': {codeL, true},
	';': {codeSemicolon, false}, ':': {codeSemicolon, true},
	'\'': {codeApostrophe, false}, '"': {codeApostrophe, true},

	// Bottom row
	'z': {codeZ, false}, 'Z': {codeZ, true},
	'x': {codeX, false}, 'X': {codeX, true},
	'c': {codeC, false}, 'C': {codeC, true},
	'v': {codeV, false}, 'V': {codeV, true},
	'b': {codeB, false}, 'B': {codeB, true},
	'n': {codeN, false}, 'N': {codeN, true},
	'm': {codeM, false}, 'M': {codeM, true},
	',': {codeComma, false}, '<': {codeComma, true},
	'.': {codeDot, false}, '>': {codeDot, true},
	'/': {codeSlash, false}, '?': {codeSlash, true},
}

// actionStrokes maps the non-glyph outputs.
var actionStrokes = map[keyboard.OutputKind]stroke{
	keyboard.OutputEscape:      {codeEsc, false},
	keyboard.OutputEnter:       {codeEnter, false},
	keyboard.OutputSpace:       {codeSpace, false},
	keyboard.OutputTab:         {codeTab, false},
	keyboard.OutputCursorLeft:  {codeLeft, false},
	keyboard.OutputCursorDown:  {codeDown, false},
	keyboard.OutputCursorUp:    {codeUp, false},
	keyboard.OutputCursorRight: {codeRight, false},
	keyboard.OutputBackspace:   {codeBackspace, false},
	keyboard.OutputDelete:      {codeDelete, false},
}

// strokeFor returns the stroke that types out on the virtual keyboard.
func strokeFor(out keyboard.Output) (stroke, bool) {
	if out.Kind == keyboard.OutputGlyph {
		st, ok := glyphStrokes[out.Glyph]
		return st, ok
	}
	st, ok := actionStrokes[out.Kind]
	return st, ok
}
