// Package alphabet reduces input bytes to the character classes the
// numeric-literal automaton distinguishes.
//
// Instead of 256 transitions per DFA state, the transition table is indexed
// by one of NumClasses classes. Two bytes share a class exactly when no state
// of the automaton treats them differently:
//
//	.           Dot
//	x X         HexMarker
//	0           Zero
//	1-9         NonZeroDigit
//	a-f A-F     HexLetter
//	everything  Other
//
// Bytes >= 0x80 are Other; the lexer does not decode UTF-8.
package alphabet

import "fmt"

// Class is the equivalence class of an input byte.
type Class uint8

const (
	Dot Class = iota
	HexMarker
	Zero
	NonZeroDigit
	HexLetter
	Other

	// NumClasses is the number of classes and the column count of a
	// transition table.
	NumClasses = int(Other) + 1
)

// String returns the class name used in table dumps and traces.
func (c Class) String() string {
	switch c {
	case Dot:
		return "DOT"
	case HexMarker:
		return "HEX_MARKER"
	case Zero:
		return "ZERO"
	case NonZeroDigit:
		return "NONZERO_DIGIT"
	case HexLetter:
		return "HEX_LETTER"
	case Other:
		return "OTHER"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// ByteClasses maps each byte value to its Class.
type ByteClasses struct {
	classes [256]Class
}

// Numeric is the byte-to-class table used by the scanner. It is built once
// at package initialization and never modified.
var Numeric = newNumericClasses()

func newNumericClasses() ByteClasses {
	var bc ByteClasses
	bc.setRange(0x00, 0xFF, Other)
	bc.setRange('.', '.', Dot)
	bc.setRange('x', 'x', HexMarker)
	bc.setRange('X', 'X', HexMarker)
	bc.setRange('0', '0', Zero)
	bc.setRange('1', '9', NonZeroDigit)
	bc.setRange('a', 'f', HexLetter)
	bc.setRange('A', 'F', HexLetter)
	return bc
}

// setRange assigns class to every byte in [lo, hi].
func (bc *ByteClasses) setRange(lo, hi byte, class Class) {
	for b := int(lo); b <= int(hi); b++ {
		bc.classes[b] = class
	}
}

// Classify returns the class of c. It is total and has no side effects.
func Classify(c byte) Class {
	return Numeric.classes[c]
}

// Get returns the class of b. This is an O(1) lookup.
func (bc *ByteClasses) Get(b byte) Class {
	return bc.classes[b]
}

// Representatives returns the smallest byte of each class, indexed by class.
// ok[c] is false for a class that has no member bytes.
func (bc *ByteClasses) Representatives() (reps [NumClasses]byte, ok [NumClasses]bool) {
	for b := 0xFF; b >= 0; b-- {
		c := bc.classes[b]
		if int(c) < NumClasses {
			reps[c] = byte(b)
			ok[c] = true
		}
	}
	return reps, ok
}

// Elements returns all bytes that belong to class, in ascending order.
func (bc *ByteClasses) Elements(class Class) []byte {
	var elems []byte
	for b := 0; b < 256; b++ {
		if bc.classes[b] == class {
			elems = append(elems, byte(b))
		}
	}
	return elems
}
