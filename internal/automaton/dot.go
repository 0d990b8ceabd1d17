package automaton

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// maxLabel is the widest symbol set printed verbatim on an edge.
const maxLabel = 12

// WriteDOT prints a Graphviz rendering of an *NFA or *DFA to w.
func WriteDOT(w io.Writer, g any) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	switch t := g.(type) {
	case *DFA:
		for _, s := range t.States {
			fmt.Fprintf(bw, "    q%d [shape=%s];\n", s.ID, shape(s.Accept))
			// one edge per target, labelled with all symbols leading there
			byTarget := map[int][]rune{}
			for _, tr := range s.Transitions() {
				byTarget[tr.To.ID] = append(byTarget[tr.To.ID], tr.Symbol)
			}
			targets := make([]int, 0, len(byTarget))
			for id := range byTarget {
				targets = append(targets, id)
			}
			sort.Ints(targets)
			for _, id := range targets {
				fmt.Fprintf(bw, "    q%d -> q%d [label=\"%s\"];\n", s.ID, id, label(byTarget[id]))
			}
		}
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", t.Start.ID)
	case *NFA:
		for _, s := range t.States {
			fmt.Fprintf(bw, "    n%d [shape=%s];\n", s.ID, shape(s.Accept))
			for _, e := range s.edges {
				l := "ε"
				if !e.epsilon() {
					l = label(e.set)
				}
				fmt.Fprintf(bw, "    n%d -> n%d [label=\"%s\"];\n", s.ID, e.to.ID, l)
			}
		}
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", t.Start.ID)
	default:
		return fmt.Errorf("automaton: cannot render %T", g)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func shape(accept bool) string {
	if accept {
		return "doublecircle"
	}
	return "circle"
}

func label(set []rune) string {
	if len(set) > maxLabel {
		return fmt.Sprintf("%s…%s (%d)", escape(set[:1]), escape(set[len(set)-1:]), len(set))
	}
	return escape(set)
}

func escape(set []rune) string {
	var b strings.Builder
	for _, r := range set {
		switch r {
		case '"', '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
