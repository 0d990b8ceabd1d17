package automaton

import "sort"

// Minimize merges equivalent states with Hopcroft's partition refinement.
// The start state of the result has ID 0.
func Minimize(d *DFA) *DFA {
	if d == nil || d.Start == nil {
		return d
	}

	// initial partition: accepting / non-accepting
	acc, non := map[*DState]struct{}{}, map[*DState]struct{}{}
	for _, s := range d.States {
		if s.Accept {
			acc[s] = struct{}{}
		} else {
			non[s] = struct{}{}
		}
	}
	var partitions []map[*DState]struct{}
	for _, p := range []map[*DState]struct{}{acc, non} {
		if len(p) > 0 {
			partitions = append(partitions, p)
		}
	}

	// work holds block indexes; queued guards against duplicates
	work := make([]int, len(partitions))
	queued := map[int]bool{}
	for i := range work {
		work[i] = i
		queued[i] = true
	}
	push := func(i int) {
		if !queued[i] {
			queued[i] = true
			work = append(work, i)
		}
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		queued[idx] = false
		splitter := partitions[idx]

		for _, c := range d.Alphabet {
			// X = states moving into the splitter on c
			X := map[*DState]struct{}{}
			for _, s := range d.States {
				if t, ok := s.trans[c]; ok {
					if _, in := splitter[t]; in {
						X[s] = struct{}{}
					}
				}
			}
			if len(X) == 0 {
				continue
			}

			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				Y := partitions[pIdx]
				inter, diff := map[*DState]struct{}{}, map[*DState]struct{}{}
				for s := range Y {
					if _, in := X[s]; in {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}
				partitions[pIdx] = inter
				partitions = append(partitions, diff)
				// the automaton may be partial, so both halves are re-queued
				push(pIdx)
				push(len(partitions) - 1)
			}
		}
	}

	return collapse(d, partitions)
}

// collapse builds the quotient automaton. Blocks are numbered by their
// smallest original ID, with the start block first.
func collapse(d *DFA, partitions []map[*DState]struct{}) *DFA {
	minID := func(p map[*DState]struct{}) int {
		m := -1
		for s := range p {
			if m < 0 || s.ID < m {
				m = s.ID
			}
		}
		return m
	}
	sort.Slice(partitions, func(i, j int) bool {
		_, si := partitions[i][d.Start]
		_, sj := partitions[j][d.Start]
		if si != sj {
			return si
		}
		return minID(partitions[i]) < minID(partitions[j])
	})

	rep := map[*DState]*DState{}
	states := make([]*DState, len(partitions))
	for i, p := range partitions {
		var accept bool
		for s := range p {
			accept = s.Accept
			break
		}
		states[i] = newDState(i, accept)
		for s := range p {
			rep[s] = states[i]
		}
	}
	for old, r := range rep {
		for c, to := range old.trans {
			r.trans[c] = rep[to]
		}
	}
	return &DFA{Start: rep[d.Start], States: states, Alphabet: append([]rune(nil), d.Alphabet...)}
}
