// Package conv provides checked integer conversions for the lexer tables.
//
// State and class identifiers are stored in narrow integer types. Loops over
// the tables iterate with int, so every narrowing goes through these helpers,
// which panic on overflow: an out-of-range identifier is a programming error
// in the table definition, never a property of the scanned input.
package conv

import "math"

// IntToUint8 converts n to uint8.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of uint8 range")
	}
	return uint8(n)
}

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// uint comparison keeps this correct where int is 32 bits wide
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// Uint32ToUint8 converts n to uint8.
// Panics if n > math.MaxUint8.
//
//go:inline
func Uint32ToUint8(n uint32) uint8 {
	if n > math.MaxUint8 {
		panic("integer overflow: uint32 value out of uint8 range")
	}
	return uint8(n)
}
