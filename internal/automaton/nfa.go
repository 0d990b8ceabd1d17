package automaton

import (
	"fmt"

	"mygrep/internal/syntax"
)

// State is a Thompson NFA state.
type State struct {
	ID     int
	Accept bool
	edges  []edge
}

// edge is a transition on any rune of set, or an ε-move when set is nil.
type edge struct {
	set []rune
	to  *State
}

func (e edge) epsilon() bool { return e.set == nil }

func (e edge) matches(r rune) bool {
	for _, s := range e.set {
		if s == r {
			return true
		}
	}
	return false
}

// NFA is an ε-NFA with a single start and a single accepting state.
type NFA struct {
	Start  *State
	Final  *State
	States []*State
}

type frag struct {
	start *State
	outs  []*State // dangling ends, patched with ε-moves to the next state
}

// builder numbers states locally so independent builds never share counters.
type builder struct {
	states []*State
}

func (b *builder) newState() *State {
	s := &State{ID: len(b.states)}
	b.states = append(b.states, s)
	return s
}

func patchOuts(outs []*State, to *State) {
	for _, s := range outs {
		s.edges = append(s.edges, edge{to: to})
	}
}

func (b *builder) build(n syntax.Node) frag {
	switch t := n.(type) {
	case syntax.Empty:
		s := b.newState()
		return frag{start: s, outs: []*State{s}}
	case syntax.CharGroup:
		s1 := b.newState()
		s2 := b.newState()
		s1.edges = append(s1.edges, edge{set: t.Symbols(), to: s2})
		return frag{start: s1, outs: []*State{s2}}
	case syntax.Concat:
		f1 := b.build(t.Left())
		f2 := b.build(t.Right())
		patchOuts(f1.outs, f2.start)
		return frag{start: f1.start, outs: f2.outs}
	case syntax.Union:
		s := b.newState()
		f1 := b.build(t.Left())
		f2 := b.build(t.Right())
		s.edges = append(s.edges, edge{to: f1.start}, edge{to: f2.start})
		outs := append(f1.outs, f2.outs...)
		return frag{start: s, outs: outs}
	case syntax.Star:
		s := b.newState()
		f := b.build(t.Child())
		patchOuts(f.outs, s)
		s.edges = append(s.edges, edge{to: f.start})
		return frag{start: s, outs: []*State{s}}
	default:
		panic(fmt.Sprintf("automaton: unknown syntax node %T", n))
	}
}

// Thompson builds an ε-NFA recognising the language of root.
func Thompson(root syntax.Node) *NFA {
	var b builder
	f := b.build(root)
	final := b.newState()
	final.Accept = true
	patchOuts(f.outs, final)
	return &NFA{Start: f.start, Final: final, States: b.states}
}

type stateSet map[*State]struct{}

func epsilonClosure(set stateSet) stateSet {
	stack := make([]*State, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range s.edges {
			if !e.epsilon() {
				continue
			}
			if _, ok := set[e.to]; !ok {
				set[e.to] = struct{}{}
				stack = append(stack, e.to)
			}
		}
	}
	return set
}

func move(set stateSet, r rune) stateSet {
	res := stateSet{}
	for s := range set {
		for _, e := range s.edges {
			if !e.epsilon() && e.matches(r) {
				res[e.to] = struct{}{}
			}
		}
	}
	return res
}

func hasAccept(set stateSet) bool {
	for s := range set {
		if s.Accept {
			return true
		}
	}
	return false
}

// Accepts reports whether the whole of word is in the language.
func (n *NFA) Accepts(word string) bool {
	cur := epsilonClosure(stateSet{n.Start: {}})
	for _, r := range word {
		cur = epsilonClosure(move(cur, r))
		if len(cur) == 0 {
			return false
		}
	}
	return hasAccept(cur)
}
