package automaton

import "mygrep/internal/syntax"

// Machine bundles the automata compiled from one syntax tree.
type Machine struct {
	NFA      *NFA
	RawDFA   *DFA
	DFA      *DFA // minimised unless compiled without minimisation
	Alphabet []rune
}

// Compile builds the Thompson NFA of root and determinises it over the
// symbols root mentions.
func Compile(root syntax.Node, minimize bool) *Machine {
	nfa := Thompson(root)
	alpha := AlphabetOf(root)
	raw := Determinize(nfa, alpha)
	dfa := raw
	if minimize {
		dfa = Minimize(raw)
	}
	return &Machine{NFA: nfa, RawDFA: raw, DFA: dfa, Alphabet: alpha}
}

func (m *Machine) Accepts(word string) bool { return m.DFA.Accepts(word) }
