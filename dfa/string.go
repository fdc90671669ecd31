package dfa

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/coregx/numlex/alphabet"
)

// String renders the transition and accept tables, one state per row,
// followed by the bytes of each class column:
//
//	STATE   DOT  HEX_MARKER  ...  ACCEPT
//	Start   Dot  Trap        ...  NONE
//	...
//
//	CLASS       BYTES
//	HEX_MARKER  X x
func (t *Table) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprint(w, "STATE")
	for c := 0; c < alphabet.NumClasses; c++ {
		fmt.Fprintf(w, "\t%v", alphabet.Class(c))
	}
	fmt.Fprintln(w, "\tACCEPT")

	for s := range t.Next {
		fmt.Fprint(w, StateID(s))
		for _, next := range t.Next[s] {
			fmt.Fprintf(w, "\t%v", next)
		}
		fmt.Fprintf(w, "\t%v\n", t.Accept[s])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "CLASS\tBYTES")
	for c := 0; c < alphabet.NumClasses; c++ {
		class := alphabet.Class(c)
		fmt.Fprintf(w, "%v\t%s\n", class, byteRanges(alphabet.Numeric.Elements(class)))
	}

	w.Flush()
	return b.String()
}

// byteRanges renders sorted bytes as runs such as "A-F a-f". Large classes
// are summarized by their size.
func byteRanges(elems []byte) string {
	if len(elems) > 32 {
		return fmt.Sprintf("%d other bytes", len(elems))
	}

	var parts []string
	for i := 0; i < len(elems); {
		j := i
		for j+1 < len(elems) && elems[j+1] == elems[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, fmt.Sprintf("%c-%c", elems[i], elems[j]))
		} else {
			parts = append(parts, fmt.Sprintf("%c", elems[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, " ")
}
