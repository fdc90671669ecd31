package dfa

import "fmt"

// Errors reported by Table.Validate. The returned *TableError carries a
// message naming the offending state; compare with errors.Is against these.
var (
	// ErrStateOutOfRange indicates a transition to a state the table does
	// not define.
	ErrStateOutOfRange = &TableError{
		Kind:    StateOutOfRange,
		Message: "transition to undefined state",
	}

	// ErrInvalidKind indicates an accept kind other than None, Int or Dec.
	ErrInvalidKind = &TableError{
		Kind:    InvalidKind,
		Message: "invalid accept kind",
	}

	// ErrTrapAccepts indicates that the trap state is marked accepting.
	ErrTrapAccepts = &TableError{
		Kind:    TrapAccepts,
		Message: "trap state is accepting",
	}

	// ErrTrapEscapes indicates a transition out of the trap state.
	ErrTrapEscapes = &TableError{
		Kind:    TrapEscapes,
		Message: "trap state has an outgoing transition",
	}

	// ErrDeadState indicates a reachable state, other than the trap, from
	// which no accepting state can be reached. A scan entering it would run
	// to the end of the input for nothing.
	ErrDeadState = &TableError{
		Kind:    DeadState,
		Message: "reachable state cannot accept",
	}
)

// ErrorKind classifies table errors.
type ErrorKind uint8

const (
	StateOutOfRange ErrorKind = iota
	InvalidKind
	TrapAccepts
	TrapEscapes
	DeadState
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case StateOutOfRange:
		return "StateOutOfRange"
	case InvalidKind:
		return "InvalidKind"
	case TrapAccepts:
		return "TrapAccepts"
	case TrapEscapes:
		return "TrapEscapes"
	case DeadState:
		return "DeadState"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// TableError describes a transition table that breaks an automaton
// invariant.
type TableError struct {
	Kind    ErrorKind
	Message string
	State   StateID // state where the violation was found
	Detail  string  // optional, e.g. the offending transition
}

func newTableError(sentinel *TableError, state StateID, format string, args ...any) *TableError {
	return &TableError{
		Kind:    sentinel.Kind,
		Message: sentinel.Message,
		State:   state,
		Detail:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface
func (e *TableError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("dfa: %s: %s", e.Message, e.Detail)
	}
	return "dfa: " + e.Message
}

// Is implements error comparison for errors.Is
func (e *TableError) Is(target error) bool {
	t, ok := target.(*TableError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
