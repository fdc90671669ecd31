// Package dfa holds the deterministic finite automaton that recognizes
// numeric literals.
//
// The automaton is pure data: a transition table indexed by
// [StateID][alphabet.Class] and an accept-kind table indexed by StateID.
// Both are total, so a scan never needs a fallback branch:
//
//	next := table.Step(state, alphabet.Classify(b))
//	if table.IsAccepting(next) { ... }
//	if IsTrap(next) { stop }
//
// The Numeric table realizes this grammar:
//
//	0                            INT
//	[1-9][0-9]*                  INT
//	0[xX][0-9a-fA-F]+            INT
//	[0-9]*[a-fA-F][0-9a-fA-F]*   INT
//	[1-9][0-9]*\.[0-9]*          DEC
//	0\.[0-9]*                    DEC
//	\.[0-9]+                     DEC
package dfa

import (
	"fmt"

	"github.com/coregx/numlex/alphabet"
)

// StateID identifies a state of the automaton.
type StateID uint8

// States of the Numeric automaton. Start is the initial state and Trap the
// dead state of every Table.
const (
	Start     StateID = iota // nothing consumed yet
	Dot                      // "."
	Zero                     // "0"
	Digits                   // [1-9][0-9]*
	ZeroRun                  // 0[0-9]+, only a hex letter can still accept
	Hex                      // hex digits after 0x, or a digit run holding a hex letter
	HexPrefix                // 0x
	Fraction                 // integer part or nothing, a dot, [0-9]*
	Trap

	// NumStates is the row count of a transition table.
	NumStates = int(Trap) + 1
)

var stateNames = [NumStates]string{
	Start:     "Start",
	Dot:       "Dot",
	Zero:      "Zero",
	Digits:    "Digits",
	ZeroRun:   "ZeroRun",
	Hex:       "Hex",
	HexPrefix: "HexPrefix",
	Fraction:  "Fraction",
	Trap:      "Trap",
}

// String returns the state's name.
func (s StateID) String() string {
	if int(s) < NumStates {
		return stateNames[s]
	}
	return fmt.Sprintf("StateID(%d)", uint8(s))
}

// IsTrap reports whether s is the dead state. No accepting state is
// reachable from the trap, so a scan stops as soon as it enters it.
func IsTrap(s StateID) bool {
	return s == Trap
}

// Kind is the token kind accepted in a state.
type Kind uint8

const (
	None Kind = iota // not accepting
	Int              // integer literal
	Dec              // decimal literal
)

// String returns the kind's label.
func (k Kind) String() string {
	switch k {
	case None:
		return "NONE"
	case Int:
		return "INT"
	case Dec:
		return "DEC"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Table is a complete automaton over the alphabet classes.
//
// Next is total by construction: every (state, class) cell holds a state.
// A Table is read-only once built and safe for concurrent use.
type Table struct {
	Next   [NumStates][alphabet.NumClasses]StateID
	Accept [NumStates]Kind
}

// Step returns the state reached from s on an input byte of class c.
func (t *Table) Step(s StateID, c alphabet.Class) StateID {
	return t.Next[s][c]
}

// AcceptKind returns the kind accepted in s, or None.
func (t *Table) AcceptKind(s StateID) Kind {
	return t.Accept[s]
}

// IsAccepting reports whether s accepts a token.
func (t *Table) IsAccepting(s StateID) bool {
	return t.Accept[s] != None
}
