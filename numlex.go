// Package numlex extracts the longest numeric literal at an offset of its
// input, using an explicit deterministic finite automaton.
//
// The recognized literals are:
//
//	0   100   0xabc   0123456789a   123f   a    INT
//	10.3   10.   0.12   0.   .12             DEC
//
// Scanning is maximal munch: the automaton keeps running past an accepting
// state in case a longer literal follows, and the returned Token always
// reflects the longest accepted prefix, not where scanning stopped.
//
// Basic usage:
//
//	line := "0x1fz"
//	tok := numlex.ScanString(line, 0)
//	fmt.Println(numlex.Format(tok, line)) // INT0x1f
//
// When no literal starts at the offset, the token has kind Error and
// length 0. That is an ordinary result, not a failure.
//
// The tables behind the scanner live in the dfa and alphabet packages. They
// are immutable, so every function here is safe for concurrent use.
package numlex

import "fmt"

// Kind is the kind of a scanned token.
type Kind uint8

const (
	// Error means no numeric literal starts at the scanned offset.
	Error Kind = iota
	// Int is an integer literal.
	Int
	// Dec is a decimal literal.
	Dec
)

// String returns the label used in the output format: INT, DEC or ERR.
func (k Kind) String() string {
	switch k {
	case Int:
		return "INT"
	case Dec:
		return "DEC"
	default:
		return "ERR"
	}
}

// Token is the result of one scan: the kind of literal and where it sits in
// the input. Tokens are plain values.
type Token struct {
	Kind  Kind
	Start int // byte offset of the first byte
	Len   int // length in bytes, 0 for Error
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Start + t.Len
}

// Text returns the matched bytes of input.
// input must be the string the token was scanned from.
func (t Token) Text(input string) string {
	if t.Len == 0 {
		return ""
	}
	return input[t.Start:t.End()]
}

// String returns a debug form such as INT[0:3].
func (t Token) String() string {
	return fmt.Sprintf("%v[%d:%d]", t.Kind, t.Start, t.End())
}

// Format renders tok as its kind label immediately followed by the matched
// text, with no separator: "INT100", "DEC.12", "ERR".
func Format(tok Token, input string) string {
	return tok.Kind.String() + tok.Text(input)
}

// AppendFormat appends the Format rendering of tok to dst.
func AppendFormat(dst []byte, tok Token, input []byte) []byte {
	dst = append(dst, tok.Kind.String()...)
	if tok.Len > 0 {
		dst = append(dst, input[tok.Start:tok.End()]...)
	}
	return dst
}
