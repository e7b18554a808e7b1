// Package keyboard decodes the Cardputer's built-in 56-key matrix.
//
// The keyboard is a 4x14 grid scanned through a 74HC138 3-to-8 line
// decoder. Three address pins select one of eight scan lines and seven
// pulled-up input pins report the columns, active low:
//
//	+-----------------------------------------------+
//	| `  1  2  3  4  5  6  7  8  9  0  -  =  del    |
//	| tab q  w  e  r  t  y  u  i  o  p  [  ]  \     |
//	| fn  shift a  s  d  f  g  h  j  k  l  ;  ' ent |
//	| ctrl opt alt z  x  c  v  b  n  m  ,  .  / spc |
//	+-----------------------------------------------+
//
// MatrixScanner reports which keys are down right now. State turns a
// stream of scans into pressed, released and held outputs, applying the
// shift and fn legends printed on the keycaps:
//
//	scanner, err := keyboard.NewMatrixScanner(a0, a1, a2, y0, y1, y2, y3, y4, y5, y6)
//	if err != nil {
//		return err
//	}
//	var state keyboard.State
//	for range tick.C {
//		if err := state.Update(scanner); err != nil {
//			return err
//		}
//		for _, out := range state.PressedKeys() {
//			fmt.Println(out)
//		}
//	}
package keyboard
