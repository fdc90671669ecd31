package dfa

import (
	"errors"
	"testing"

	"github.com/coregx/numlex/alphabet"
)

func TestValidateBrokenTables(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Table)
		wantErr   error
		wantState StateID
	}{
		{
			name:      "undefined state",
			mutate:    func(tb *Table) { tb.Next[Digits][alphabet.Other] = 42 },
			wantErr:   ErrStateOutOfRange,
			wantState: Digits,
		},
		{
			name:      "unknown accept kind",
			mutate:    func(tb *Table) { tb.Accept[Hex] = Kind(7) },
			wantErr:   ErrInvalidKind,
			wantState: Hex,
		},
		{
			name:      "accepting trap",
			mutate:    func(tb *Table) { tb.Accept[Trap] = Int },
			wantErr:   ErrTrapAccepts,
			wantState: Trap,
		},
		{
			name:      "trap escapes",
			mutate:    func(tb *Table) { tb.Next[Trap][alphabet.Zero] = Zero },
			wantErr:   ErrTrapEscapes,
			wantState: Trap,
		},
		{
			// Hex is the first dead state in breadth-first order.
			name:      "hex never accepts",
			mutate:    func(tb *Table) { tb.Accept[Hex] = None },
			wantErr:   ErrDeadState,
			wantState: Hex,
		},
		{
			name:      "nothing accepts",
			mutate:    func(tb *Table) { tb.Accept = [NumStates]Kind{} },
			wantErr:   ErrDeadState,
			wantState: Start,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := *Numeric
			tt.mutate(&tb)

			err := tb.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}

			var te *TableError
			if !errors.As(err, &te) {
				t.Fatalf("Validate() error %T is not *TableError", err)
			}
			if te.State != tt.wantState {
				t.Errorf("TableError.State = %v, want %v", te.State, tt.wantState)
			}
			if te.Detail == "" {
				t.Error("TableError.Detail is empty")
			}
		})
	}

	// The mutations above work on copies.
	if err := Numeric.Validate(); err != nil {
		t.Fatalf("Numeric modified by test: %v", err)
	}
}

// A dead state that cannot be reached does not affect scanning.
func TestValidateIgnoresUnreachableDeadState(t *testing.T) {
	tb := *Numeric
	tb.Next[Zero][alphabet.Zero] = Digits
	tb.Next[Zero][alphabet.NonZeroDigit] = Digits
	for c := range tb.Next[ZeroRun] {
		tb.Next[ZeroRun][c] = Trap
	}

	if err := tb.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	for _, s := range tb.Reachable() {
		if s == ZeroRun {
			t.Error("ZeroRun should be unreachable")
		}
	}
}

func TestReachableSkipsUndefinedStates(t *testing.T) {
	tb := *Numeric
	tb.Next[Start][alphabet.Other] = 200

	if got := len(tb.Reachable()); got != NumStates {
		t.Errorf("len(Reachable()) = %d, want %d", got, NumStates)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{StateOutOfRange, "StateOutOfRange"},
		{InvalidKind, "InvalidKind"},
		{TrapAccepts, "TrapAccepts"},
		{TrapEscapes, "TrapEscapes"},
		{DeadState, "DeadState"},
		{ErrorKind(99), "UnknownErrorKind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestTableErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *TableError
		want string
	}{
		{
			name: "sentinel",
			err:  ErrTrapAccepts,
			want: "dfa: trap state is accepting",
		},
		{
			name: "with detail",
			err:  newTableError(ErrDeadState, Hex, "%v is reachable but never accepts", Hex),
			want: "dfa: reachable state cannot accept: Hex is reachable but never accepts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableErrorIs(t *testing.T) {
	err := newTableError(ErrTrapEscapes, Trap, "detail")
	if !errors.Is(err, ErrTrapEscapes) {
		t.Error("errors.Is should match same kind")
	}
	if errors.Is(err, ErrTrapAccepts) {
		t.Error("errors.Is should not match different kind")
	}
	if errors.Is(err, errors.New("trap state has an outgoing transition")) {
		t.Error("errors.Is should not match a plain error")
	}
}
