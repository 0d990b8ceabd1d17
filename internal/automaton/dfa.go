package automaton

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"mygrep/internal/syntax"
)

// DState is a DFA state. Missing transitions lead to an implicit dead state.
type DState struct {
	ID     int
	Accept bool
	trans  map[rune]*DState
}

func newDState(id int, accept bool) *DState {
	return &DState{ID: id, Accept: accept, trans: map[rune]*DState{}}
}

// DFA is a deterministic automaton over Alphabet. States[i].ID == i.
type DFA struct {
	Start    *DState
	States   []*DState
	Alphabet []rune
}

// AlphabetOf collects the distinct symbols of every CharGroup under root, sorted.
func AlphabetOf(root syntax.Node) []rune {
	seen := map[rune]struct{}{}
	var walk func(syntax.Node)
	walk = func(n syntax.Node) {
		if g, ok := n.(syntax.CharGroup); ok {
			for _, r := range g.Symbols() {
				seen[r] = struct{}{}
			}
			return
		}
		for _, c := range syntax.Children(n) {
			walk(c)
		}
	}
	walk(root)
	return sortedRunes(seen)
}

func sortedRunes(m map[rune]struct{}) []rune {
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func setKey(set stateSet) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s.ID)
	}
	sort.Ints(ids)
	return fmt.Sprint(ids)
}

// Determinize runs the subset construction over alpha.
func Determinize(n *NFA, alpha []rune) *DFA {
	initSet := epsilonClosure(stateSet{n.Start: {}})
	start := newDState(0, hasAccept(initSet))
	byKey := map[string]*DState{setKey(initSet): start}
	states := []*DState{start}
	queue := []stateSet{initSet}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curD := byKey[setKey(cur)]
		for _, sym := range alpha {
			next := move(cur, sym)
			if len(next) == 0 {
				continue
			}
			clo := epsilonClosure(next)
			k := setKey(clo)
			d, ok := byKey[k]
			if !ok {
				d = newDState(len(states), hasAccept(clo))
				byKey[k] = d
				states = append(states, d)
				queue = append(queue, clo)
			}
			curD.trans[sym] = d
		}
	}
	return &DFA{Start: start, States: states, Alphabet: append([]rune(nil), alpha...)}
}

// Delta is the transition function. ok is false when s has no move on r.
func (d *DFA) Delta(s *DState, r rune) (next *DState, ok bool) {
	next, ok = s.trans[r]
	return next, ok
}

// Accepts reports whether the whole of word is in the language.
func (d *DFA) Accepts(word string) bool {
	cur := d.Start
	for _, r := range word {
		next, ok := cur.trans[r]
		if !ok {
			return false
		}
		cur = next
	}
	return cur.Accept
}

// FindIndex returns the byte offsets of the leftmost-longest match in text.
func (d *DFA) FindIndex(text string) (start, end int, ok bool) {
	for i := 0; i <= len(text); {
		if l := d.longestAt(text[i:]); l >= 0 {
			return i, i + l, true
		}
		if i == len(text) {
			break
		}
		_, sz := utf8.DecodeRuneInString(text[i:])
		i += sz
	}
	return 0, 0, false
}

// Search reports whether some substring of text is in the language.
func (d *DFA) Search(text string) bool {
	_, _, ok := d.FindIndex(text)
	return ok
}

// longestAt returns the length of the longest accepted prefix of s, or -1.
func (d *DFA) longestAt(s string) int {
	best := -1
	cur := d.Start
	if cur.Accept {
		best = 0
	}
	for pos, r := range s {
		next, ok := cur.trans[r]
		if !ok {
			break
		}
		cur = next
		if cur.Accept {
			_, sz := utf8.DecodeRuneInString(s[pos:])
			best = pos + sz
		}
	}
	return best
}

// Transitions returns the moves of s sorted by symbol.
func (s *DState) Transitions() []Transition {
	out := make([]Transition, 0, len(s.trans))
	for r, to := range s.trans {
		out = append(out, Transition{Symbol: r, To: to})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

type Transition struct {
	Symbol rune
	To     *DState
}
