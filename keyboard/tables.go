package keyboard

// The matrix is wired as 4 rows by 14 columns but scanned as eight
// groups of seven. Decoder addresses 0-3 select the odd columns of
// rows 0-3, addresses 4-7 the even columns of the same rows.
// columnMap[half][input] is the column for an input pin in each half.
var columnMap = [2][7]int{
	{1, 3, 5, 7, 9, 11, 13},
	{0, 2, 4, 6, 8, 10, 12},
}

// matrixKeyMap is indexed by [row][column]. Row 0 is the bottom row of
// the deck, column 0 the leftmost key.
var matrixKeyMap = [4][14]Key{
	{
		KeyCtrl, KeyOpt, KeyAlt, KeyZ, KeyX, KeyC, KeyV,
		KeyB, KeyN, KeyM, KeyComma, KeyPeriod, KeySlash, KeySpace,
	},
	{
		KeyFn, KeyShift, KeyA, KeyS, KeyD, KeyF, KeyG,
		KeyH, KeyJ, KeyK, KeyL, KeySemicolon, KeyQuote, KeyEnter,
	},
	{
		KeyTab, KeyQ, KeyW, KeyE, KeyR, KeyT, KeyY,
		KeyU, KeyI, KeyO, KeyP, KeyOpenBracket, KeyCloseBracket, KeyBackslash,
	},
	{
		KeyBackquote, Key1, Key2, Key3, Key4, Key5, Key6,
		Key7, Key8, Key9, Key0, KeyMinus, KeyEqual, KeyBackspace,
	},
}
