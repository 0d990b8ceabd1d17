package automaton

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"mygrep/internal/alphabet"
	"mygrep/internal/syntax"
)

func compile(t *testing.T, postfix string, minimize bool) *Machine {
	t.Helper()
	src, err := alphabet.FromString("abcd")
	assert.NoError(t, err)
	n, err := syntax.Parse(postfix, src)
	assert.NoError(t, err)
	return Compile(n, minimize)
}

// words returns every word over alpha of length <= max.
func words(alpha string, max int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, w := range frontier {
			for _, r := range alpha {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		postfix string
		yes     []string
		no      []string
	}{
		{"ab@", []string{"ab"}, []string{"", "a", "b", "ba", "abb"}},
		{"ab|", []string{"a", "b"}, []string{"", "ab"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"a?", []string{"", "a"}, []string{"aa", "b"}},
		{".", []string{"a", "b", "c", "d"}, []string{"", "ab"}},
		{"ab@c|*d@", []string{"d", "abd", "cd", "abcabd"}, []string{"", "ab", "acd", "abdd"}},
		{"a?*", []string{"", "a", "aaa"}, []string{"b"}},
	}
	for _, tt := range tests {
		for _, minimize := range []bool{false, true} {
			m := compile(t, tt.postfix, minimize)
			for _, w := range tt.yes {
				assert.True(t, m.NFA.Accepts(w), "NFA %s should accept %q", tt.postfix, w)
				assert.True(t, m.Accepts(w), "DFA %s should accept %q", tt.postfix, w)
			}
			for _, w := range tt.no {
				assert.False(t, m.NFA.Accepts(w), "NFA %s should reject %q", tt.postfix, w)
				assert.False(t, m.Accepts(w), "DFA %s should reject %q", tt.postfix, w)
			}
		}
	}
}

func TestNFAtoDFAEquivalence(t *testing.T) {
	for _, p := range []string{"ab@a|*c@", "ab|*a@b@", "a?b?@c*@", ".a@*"} {
		m := compile(t, p, true)
		for _, w := range words("abc", 4) {
			assert.Equal(t, m.NFA.Accepts(w), m.RawDFA.Accepts(w), "%s raw on %q", p, w)
			assert.Equal(t, m.NFA.Accepts(w), m.DFA.Accepts(w), "%s min on %q", p, w)
		}
	}
}

func TestMinimizeCount(t *testing.T) {
	m := compile(t, "ab@ac@|", true)
	assert.Equal(t, 4, len(m.RawDFA.States))
	assert.Equal(t, 3, len(m.DFA.States))
	assert.Equal(t, 0, m.DFA.Start.ID)
	for i, s := range m.DFA.States {
		assert.Equal(t, i, s.ID)
	}
}

func TestMinimizeStarLoop(t *testing.T) {
	m := compile(t, "ab|*", true)
	assert.Equal(t, 1, len(m.DFA.States))
	assert.True(t, m.DFA.Start.Accept)
}

func TestAlphabetOf(t *testing.T) {
	m := compile(t, "ca@.|", false)
	assert.Equal(t, []rune("abcd"), m.Alphabet)
	m = compile(t, "ba@?", false)
	assert.Equal(t, []rune("ab"), m.Alphabet)
}

func TestDelta(t *testing.T) {
	d := compile(t, "ab@", true).DFA
	next, ok := d.Delta(d.Start, 'a')
	assert.True(t, ok)
	_, ok = d.Delta(next, 'a')
	assert.False(t, ok)
	final, ok := d.Delta(next, 'b')
	assert.True(t, ok)
	assert.True(t, final.Accept)
}

func TestSearch(t *testing.T) {
	d := compile(t, "ab@c|*d@", true).DFA
	start, end, ok := d.FindIndex("xxabcdyy")
	assert.True(t, ok)
	assert.Equal(t, "abcd", "xxabcdyy"[start:end])
	assert.True(t, d.Search("zzz d"))
	assert.False(t, d.Search("abc"))

	// a language containing ε matches anywhere, including the empty line
	opt := compile(t, "a?", true).DFA
	start, end, ok = opt.FindIndex("")
	assert.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	start, end, ok = opt.FindIndex("xa")
	assert.True(t, ok)
	assert.Equal(t, 0, end-start)
}

func TestSearchMultibyte(t *testing.T) {
	src, err := alphabet.FromString("жы")
	assert.NoError(t, err)
	n, err := syntax.Parse("жы@", src)
	assert.NoError(t, err)
	d := Compile(n, true).DFA
	text := "ёжы!"
	start, end, ok := d.FindIndex(text)
	assert.True(t, ok)
	assert.Equal(t, "жы", text[start:end])
}

func TestReverse(t *testing.T) {
	d := compile(t, "ab@b*@", true).DFA
	rev := Reverse(d)
	for _, w := range words("ab", 4) {
		assert.Equal(t, d.Accepts(w), rev.Accepts(reverse(w)), "on %q", w)
	}
	assert.True(t, rev.Accepts("bba"))
	assert.False(t, rev.Accepts("ab"))
}

func TestReverseAcceptsEmpty(t *testing.T) {
	rev := Reverse(compile(t, "a*", true).DFA)
	assert.True(t, rev.Accepts(""))
	assert.True(t, rev.Accepts("aa"))
}

func TestSetOps(t *testing.T) {
	a := compile(t, "ab|*", true).DFA
	b := compile(t, "aa*@", true).DFA

	inter := Intersect(a, b)
	assert.True(t, inter.Accepts("aaa"))
	assert.False(t, inter.Accepts("b"))
	assert.False(t, inter.Accepts(""))

	union := Union(a, b)
	assert.True(t, union.Accepts(""))
	assert.True(t, union.Accepts("bab"))

	comp := Complement(b)
	assert.True(t, comp.Accepts(""))
	assert.False(t, comp.Accepts("aa"))
	// b's alphabet is {a}; symbols outside it stay rejected
	assert.False(t, comp.Accepts("c"))

	// the inputs are not modified
	assert.True(t, b.Accepts("a"))
	assert.False(t, b.Accepts(""))
}

func TestCompleteAddsDeadState(t *testing.T) {
	d := compile(t, "ab@", true).DFA
	full := Complete(d)
	assert.Equal(t, len(d.States)+1, len(full.States))
	for _, s := range full.States {
		assert.Equal(t, 2, len(s.Transitions()))
	}
}

func TestWriteDOT(t *testing.T) {
	m := compile(t, "ab|", true)
	var buf bytes.Buffer
	assert.NoError(t, WriteDOT(&buf, m.DFA))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.Contains(t, out, `q0 -> q1 [label="ab"];`)
	assert.Contains(t, out, "q1 [shape=doublecircle];")
	assert.Contains(t, out, "_start -> q0;")

	buf.Reset()
	assert.NoError(t, WriteDOT(&buf, m.NFA))
	assert.Contains(t, buf.String(), `[label="ε"]`)

	assert.Error(t, WriteDOT(&buf, 42))
}

func TestWriteDOTLongLabel(t *testing.T) {
	n, err := syntax.Parse(".", alphabet.ASCII())
	assert.NoError(t, err)
	var buf bytes.Buffer
	assert.NoError(t, WriteDOT(&buf, Compile(n, true).DFA))
	assert.Contains(t, buf.String(), `label=" …~ (95)"`)
}

func TestIndependentBuilds(t *testing.T) {
	a := compile(t, "ab@", false)
	b := compile(t, "ab@", false)
	assert.Equal(t, 0, a.NFA.Start.ID)
	assert.Equal(t, a.NFA.Start.ID, b.NFA.Start.ID)
	assert.Equal(t, len(a.NFA.States), len(b.NFA.States))
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
