package keyboard

// OutputKind discriminates the values a key press can resolve to.
type OutputKind uint8

const (
	// OutputGlyph carries a printable character in Output.Glyph.
	OutputGlyph OutputKind = iota
	OutputEscape
	OutputEnter
	OutputSpace
	OutputTab
	OutputCursorLeft
	OutputCursorDown
	OutputCursorUp
	OutputCursorRight
	OutputBackspace
	OutputDelete
)

// Output is what a key press means once the modifier flags have been
// applied: either a printable glyph or a named action. Values are
// comparable with ==; Glyph is zero unless Kind is OutputGlyph.
type Output struct {
	Kind  OutputKind
	Glyph rune
}

var outputNames = map[OutputKind]string{
	OutputEscape:      "Escape",
	OutputEnter:       "Enter",
	OutputSpace:       "Space",
	OutputTab:         "Tab",
	OutputCursorLeft:  "CursorLeft",
	OutputCursorDown:  "CursorDown",
	OutputCursorUp:    "CursorUp",
	OutputCursorRight: "CursorRight",
	OutputBackspace:   "Backspace",
	OutputDelete:      "Delete",
}

func (o Output) String() string {
	if o.Kind == OutputGlyph {
		return string(o.Glyph)
	}
	if name, ok := outputNames[o.Kind]; ok {
		return name
	}
	return "Output(?)"
}

// glyph is a shorthand for building rule table entries.
func glyph(r rune) Output {
	return Output{Kind: OutputGlyph, Glyph: r}
}

func action(k OutputKind) Output {
	return Output{Kind: k}
}
