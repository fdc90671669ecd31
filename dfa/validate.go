package dfa

import (
	"github.com/coregx/numlex/alphabet"
	"github.com/coregx/numlex/internal/conv"
	"github.com/coregx/numlex/internal/sparse"
)

// Validate checks the invariants a scanner relies on:
//
//   - every transition names a defined state and every accept kind is known
//   - the trap state is not accepting and every transition from it loops
//   - every state reachable from Start, except the trap, can still reach an
//     accepting state
//
// It returns nil or a *TableError.
func (t *Table) Validate() error {
	for i := 0; i < NumStates; i++ {
		s := StateID(conv.IntToUint8(i))
		for c, next := range t.Next[s] {
			if int(next) >= NumStates {
				return newTableError(ErrStateOutOfRange, s,
					"%v on %v goes to state %d", s, alphabet.Class(conv.IntToUint8(c)), next)
			}
		}
		if t.Accept[s] > Dec {
			return newTableError(ErrInvalidKind, s, "%v accepts %v", s, t.Accept[s])
		}
	}

	if t.Accept[Trap] != None {
		return newTableError(ErrTrapAccepts, Trap, "trap accepts %v", t.Accept[Trap])
	}
	for c, next := range t.Next[Trap] {
		if next != Trap {
			return newTableError(ErrTrapEscapes, Trap,
				"trap on %v goes to %v", alphabet.Class(conv.IntToUint8(c)), next)
		}
	}

	live := t.live()
	for _, v := range t.reachable().Values() {
		if v != uint32(Trap) && !live.Contains(v) {
			s := StateID(conv.Uint32ToUint8(v))
			return newTableError(ErrDeadState, s, "%v is reachable but never accepts", s)
		}
	}
	return nil
}

// Reachable returns the states some input reaches from Start, Start first,
// in breadth-first order. Transitions to undefined states are ignored.
func (t *Table) Reachable() []StateID {
	set := t.reachable()
	states := make([]StateID, 0, set.Len())
	for _, v := range set.Values() {
		states = append(states, StateID(conv.Uint32ToUint8(v)))
	}
	return states
}

// reachable walks the transitions input bytes can actually take: each
// column is entered through its class's representative byte, so a column
// whose class has no member bytes never contributes.
func (t *Table) reachable() *sparse.SparseSet {
	reps, ok := alphabet.Numeric.Representatives()

	set := sparse.NewSparseSet(conv.IntToUint32(NumStates))
	set.Insert(uint32(Start))
	for i := 0; i < set.Len(); i++ {
		s := StateID(conv.Uint32ToUint8(set.At(i)))
		for c := range reps {
			if !ok[c] {
				continue
			}
			if next := t.Step(s, alphabet.Numeric.Get(reps[c])); int(next) < NumStates {
				set.Insert(uint32(next))
			}
		}
	}
	return set
}

// live returns the states from which some accepting state is reachable,
// accepting states included. It walks the transitions backwards from the
// accepting states.
func (t *Table) live() *sparse.SparseSet {
	set := sparse.NewSparseSet(conv.IntToUint32(NumStates))
	for i := 0; i < NumStates; i++ {
		if t.Accept[i] != None {
			set.Insert(conv.IntToUint32(i))
		}
	}
	for i := 0; i < set.Len(); i++ {
		target := set.At(i)
		for s := 0; s < NumStates; s++ {
			for _, next := range t.Next[s] {
				if uint32(next) == target {
					set.Insert(conv.IntToUint32(s))
					break
				}
			}
		}
	}
	return set
}
