package keyboard

// ConversionRule maps a key position to its base and shifted outputs.
// Two rules are the same rule iff they are for the same Key.
type ConversionRule struct {
	key     Key
	base    Output
	shifted Output
}

// Key returns the key position this rule is for.
func (r ConversionRule) Key() Key { return r.key }

// Resolve applies the modifier flags to the rule. Fn rebinds a handful
// of positions to action outputs and wins over Shift; otherwise Shift
// selects the shifted output.
func (r ConversionRule) Resolve(fnPressed, shiftPressed bool) Output {
	if fnPressed {
		switch r.key {
		case KeySemicolon:
			return action(OutputCursorUp)
		case KeyPeriod:
			return action(OutputCursorDown)
		case KeySlash:
			return action(OutputCursorRight)
		case KeyComma:
			return action(OutputCursorLeft)
		case KeyBackquote:
			return action(OutputEscape)
		case KeyBackspace:
			return action(OutputDelete)
		}
	}
	if shiftPressed {
		return r.shifted
	}
	return r.base
}

// RuleFor returns the conversion rule for k. Modifier keys set flags
// instead of producing outputs and have no rule.
func RuleFor(k Key) (ConversionRule, bool) {
	if k.IsModifier() || int(k) >= len(conversionRules) {
		return ConversionRule{}, false
	}
	return conversionRules[k], true
}

// conversionRules is indexed by Key. The five modifier slots are left
// as zero values and are never handed out by RuleFor.
var conversionRules = [KeyCount]ConversionRule{
	KeyBackquote:    {KeyBackquote, glyph('`'), glyph('~')},
	Key1:            {Key1, glyph('1'), glyph('!')},
	Key2:            {Key2, glyph('2'), glyph('@')},
	Key3:            {Key3, glyph('3'), glyph('#')},
	Key4:            {Key4, glyph('4'), glyph('$')},
	Key5:            {Key5, glyph('5'), glyph('%')},
	Key6:            {Key6, glyph('6'), glyph('^')},
	Key7:            {Key7, glyph('7'), glyph('&')},
	Key8:            {Key8, glyph('8'), glyph('*')},
	Key9:            {Key9, glyph('9'), glyph('(')},
	Key0:            {Key0, glyph('0'), glyph(')')},
	KeyMinus:        {KeyMinus, glyph('-'), glyph('_')},
	KeyEqual:        {KeyEqual, glyph('='), glyph('+')},
	KeyBackspace:    {KeyBackspace, action(OutputBackspace), action(OutputBackspace)},
	KeyTab:          {KeyTab, action(OutputTab), action(OutputTab)},
	KeyQ:            {KeyQ, glyph('q'), glyph('Q')},
	KeyW:            {KeyW, glyph('w'), glyph('W')},
	KeyE:            {KeyE, glyph('e'), glyph('E')},
	KeyR:            {KeyR, glyph('r'), glyph('R')},
	KeyT:            {KeyT, glyph('t'), glyph('T')},
	KeyY:            {KeyY, glyph('y'), glyph('Y')},
	KeyU:            {KeyU, glyph('u'), glyph('U')},
	KeyI:            {KeyI, glyph('i'), glyph('I')},
	KeyO:            {KeyO, glyph('o'), glyph('O')},
	KeyP:            {KeyP, glyph('p'), glyph('P')},
	KeyOpenBracket:  {KeyOpenBracket, glyph('['), glyph('{')},
	KeyCloseBracket: {KeyCloseBracket, glyph(']'), glyph('}')},
	KeyBackslash:    {KeyBackslash, glyph('\\'), glyph('|')},
	KeyA:            {KeyA, glyph('a'), glyph('A')},
	KeyS:            {KeyS, glyph('s'), glyph('S')},
	KeyD:            {KeyD, glyph('d'), glyph('D')},
	KeyF:            {KeyF, glyph('f'), glyph('F')},
	KeyG:            {KeyG, glyph('g'), glyph('G')},
	KeyH:            {KeyH, glyph('h'), glyph('H')},
	KeyJ:            {KeyJ, glyph('j'), glyph('J')},
	KeyK:            {KeyK, glyph('k'), glyph('K')},
	KeyL:            {KeyL, glyph('l'), glyph('L')},
	KeySemicolon:    {KeySemicolon, glyph(';'), glyph(':')},
	KeyQuote:        {KeyQuote, glyph('\''), glyph('"')},
	KeyEnter:        {KeyEnter, action(OutputEnter), action(OutputEnter)},
	KeyZ:            {KeyZ, glyph('z'), glyph('Z')},
	KeyX:            {KeyX, glyph('x'), glyph('X')},
	KeyC:            {KeyC, glyph('c'), glyph('C')},
	KeyV:            {KeyV, glyph('v'), glyph('V')},
	KeyB:            {KeyB, glyph('b'), glyph('B')},
	KeyN:            {KeyN, glyph('n'), glyph('N')},
	KeyM:            {KeyM, glyph('m'), glyph('M')},
	KeyComma:        {KeyComma, glyph(','), glyph('<')},
	KeyPeriod:       {KeyPeriod, glyph('.'), glyph('>')},
	KeySlash:        {KeySlash, glyph('/'), glyph('?')},
	KeySpace:        {KeySpace, action(OutputSpace), action(OutputSpace)},
}
