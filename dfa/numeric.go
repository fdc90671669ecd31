package dfa

import "github.com/coregx/numlex/alphabet"

// Numeric is the numeric-literal automaton. It is shared by every scan and
// must not be modified.
//
// Zero keeps going on more digits because a later hex letter can still turn
// the run into an INT ("0123456789a"), while Dot and HexPrefix are the two
// places where one more byte decides between a token and nothing.
var Numeric = &Table{
	Next: [NumStates][alphabet.NumClasses]StateID{
		// DOT, HEX_MARKER, ZERO, NONZERO_DIGIT, HEX_LETTER, OTHER
		Start:     {Dot, Trap, Zero, Digits, Hex, Trap},
		Dot:       {Trap, Trap, Fraction, Fraction, Trap, Trap},
		Zero:      {Fraction, HexPrefix, ZeroRun, ZeroRun, Hex, Trap},
		Digits:    {Fraction, Trap, Digits, Digits, Hex, Trap},
		ZeroRun:   {Trap, Trap, ZeroRun, ZeroRun, Hex, Trap},
		Hex:       {Trap, Trap, Hex, Hex, Hex, Trap},
		HexPrefix: {Trap, Trap, Hex, Hex, Hex, Trap},
		Fraction:  {Trap, Trap, Fraction, Fraction, Trap, Trap},
		Trap:      {Trap, Trap, Trap, Trap, Trap, Trap},
	},
	Accept: [NumStates]Kind{
		Zero:     Int,
		Digits:   Int,
		Hex:      Int,
		Fraction: Dec,
	},
}
