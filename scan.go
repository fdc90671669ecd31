package numlex

import (
	"errors"

	"github.com/coregx/numlex/alphabet"
	"github.com/coregx/numlex/dfa"
)

// Step describes one transition taken during a scan.
type Step struct {
	Pos    int // offset of the consumed byte
	Byte   byte
	Class  alphabet.Class
	From   dfa.StateID
	To     dfa.StateID
	Accept dfa.Kind // kind accepted in To, or dfa.None
}

// Observer is called for every transition of an observed scan, including
// the final one into the trap state.
type Observer func(Step)

// Scanner runs an automaton over its input.
//
// A Scanner is safe for concurrent use: all scan state lives on the stack
// of the call.
type Scanner struct {
	table *dfa.Table
}

// std scans with the numeric-literal automaton.
var std = &Scanner{table: dfa.Numeric}

// ErrNilTable is returned by NewScanner for a nil table.
var ErrNilTable = errors.New("numlex: nil table")

// NewScanner returns a Scanner driven by table. It fails with ErrNilTable
// for a nil table and with a *dfa.TableError if the table breaks an
// automaton invariant.
func NewScanner(table *dfa.Table) (*Scanner, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{table: table}, nil
}

// Scan returns the longest numeric literal of input starting at start.
//
// If no prefix at start is a literal, including start == len(input), the
// token has kind Error and length 0. A start outside [0, len(input)] gives
// the same Error token instead of a panic.
func Scan(input []byte, start int) Token {
	return scan(std, input, start, nil)
}

// ScanString is like Scan but takes a string.
func ScanString(input string, start int) Token {
	return scan(std, input, start, nil)
}

// ScanObserved is like Scan but reports every transition to obs.
func ScanObserved(input []byte, start int, obs Observer) Token {
	return scan(std, input, start, obs)
}

// Scan returns the longest token of input starting at start.
func (s *Scanner) Scan(input []byte, start int) Token {
	return scan(s, input, start, nil)
}

// ScanString is like Scan but takes a string.
func (s *Scanner) ScanString(input string, start int) Token {
	return scan(s, input, start, nil)
}

// ScanObserved is like Scan but reports every transition to obs.
func (s *Scanner) ScanObserved(input []byte, start int, obs Observer) Token {
	return scan(s, input, start, obs)
}

func scan[T ~string | ~[]byte](s *Scanner, input T, start int, obs Observer) Token {
	if start < 0 || start > len(input) {
		return Token{Kind: Error, Start: start}
	}

	state := dfa.Start
	accept := dfa.None
	acceptEnd := start

	for pos := start; pos < len(input); {
		b := input[pos]
		class := alphabet.Classify(b)
		pos++

		next := s.table.Step(state, class)
		kind := s.table.AcceptKind(next)

		// Record every accepting landing: the scan may continue and fail
		// later, and this is the best match so far.
		if kind != dfa.None {
			accept = kind
			acceptEnd = pos
		}

		if obs != nil {
			obs(Step{
				Pos:    pos - 1,
				Byte:   b,
				Class:  class,
				From:   state,
				To:     next,
				Accept: kind,
			})
		}

		if dfa.IsTrap(next) {
			break
		}
		state = next
	}

	return Token{Kind: tokenKind(accept), Start: start, Len: acceptEnd - start}
}

func tokenKind(k dfa.Kind) Kind {
	switch k {
	case dfa.Int:
		return Int
	case dfa.Dec:
		return Dec
	default:
		return Error
	}
}
