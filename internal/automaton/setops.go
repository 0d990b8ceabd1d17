package automaton

// Reverse returns a DFA for the mirror language of d: every edge is
// transposed and the result determinised.
func Reverse(d *DFA) *DFA {
	var b builder
	nodes := make([]*State, len(d.States))
	for i := range nodes {
		nodes[i] = b.newState()
	}
	nodes[d.Start.ID].Accept = true

	start := b.newState()
	for _, s := range d.States {
		if s.Accept {
			start.edges = append(start.edges, edge{to: nodes[s.ID]})
		}
		for _, t := range s.Transitions() {
			to := nodes[t.To.ID]
			to.edges = append(to.edges, edge{set: []rune{t.Symbol}, to: nodes[s.ID]})
		}
	}
	return Determinize(&NFA{Start: start, Final: nodes[d.Start.ID], States: b.states}, d.Alphabet)
}

// Complete adds a dead state so that every state has a move on every symbol
// of the alphabet. d itself is left untouched.
func Complete(d *DFA) *DFA {
	out := clone(d)
	var dead *DState
	for _, s := range out.States {
		for _, c := range out.Alphabet {
			if _, ok := s.trans[c]; ok {
				continue
			}
			if dead == nil {
				dead = newDState(len(out.States), false)
				for _, a := range out.Alphabet {
					dead.trans[a] = dead
				}
			}
			s.trans[c] = dead
		}
	}
	if dead != nil {
		out.States = append(out.States, dead)
	}
	return out
}

// Complement accepts exactly the words over d.Alphabet that d rejects.
func Complement(d *DFA) *DFA {
	out := Complete(d)
	for _, s := range out.States {
		s.Accept = !s.Accept
	}
	return out
}

// Product runs a and b in lockstep over the union of their alphabets and
// accepts where op does.
func Product(a, b *DFA, op func(bool, bool) bool) *DFA {
	type pair struct{ i, j int }
	alpha := unionRunes(a.Alphabet, b.Alphabet)
	ca, cb := Complete(withAlphabet(a, alpha)), Complete(withAlphabet(b, alpha))

	startPair := pair{ca.Start.ID, cb.Start.ID}
	start := newDState(0, op(ca.Start.Accept, cb.Start.Accept))
	seen := map[pair]*DState{startPair: start}
	states := []*DState{start}
	queue := []pair{startPair}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := seen[p]
		for _, c := range alpha {
			ta := ca.States[p.i].trans[c]
			tb := cb.States[p.j].trans[c]
			np := pair{ta.ID, tb.ID}
			ns, ok := seen[np]
			if !ok {
				ns = newDState(len(states), op(ta.Accept, tb.Accept))
				seen[np] = ns
				states = append(states, ns)
				queue = append(queue, np)
			}
			cur.trans[c] = ns
		}
	}
	return &DFA{Start: start, States: states, Alphabet: alpha}
}

func Intersect(a, b *DFA) *DFA { return Product(a, b, func(x, y bool) bool { return x && y }) }
func Union(a, b *DFA) *DFA { return Product(a, b, func(x, y bool) bool { return x || y }) }

func clone(d *DFA) *DFA {
	states := make([]*DState, len(d.States))
	for i, s := range d.States {
		states[i] = newDState(i, s.Accept)
	}
	for i, s := range d.States {
		for c, t := range s.trans {
			states[i].trans[c] = states[t.ID]
		}
	}
	return &DFA{Start: states[d.Start.ID], States: states, Alphabet: append([]rune(nil), d.Alphabet...)}
}

func withAlphabet(d *DFA, alpha []rune) *DFA {
	out := clone(d)
	out.Alphabet = append([]rune(nil), alpha...)
	return out
}

func unionRunes(a, b []rune) []rune {
	m := map[rune]struct{}{}
	for _, r := range a {
		m[r] = struct{}{}
	}
	for _, r := range b {
		m[r] = struct{}{}
	}
	return sortedRunes(m)
}
