package syntax

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

type fakeSource struct {
	alpha []rune
}

func (fakeSource) Empty() Node { return Empty{} }
func (f fakeSource) Alphabet() []rune { return append([]rune(nil), f.alpha...) }

var abc = fakeSource{alpha: []rune("abc")}

func cg(s string) CharGroup { return NewCharGroup([]rune(s)...) }

func mustParse(t *testing.T, postfix string) Node {
	t.Helper()
	n, err := Parse(postfix, abc)
	assert.NoError(t, err)
	return n
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		postfix string
		want    Node
	}{
		{"a", cg("a")},
		{"ab@", NewConcat(cg("a"), cg("b"))},
		{"ba@", NewConcat(cg("b"), cg("a"))},
		{"ab|", NewUnion(cg("a"), cg("b"))},
		{"a*", NewStar(cg("a"))},
		{"a?", NewUnion(Empty{}, cg("a"))},
		{".", cg("abc")},
		{"ab@c@", NewConcat(NewConcat(cg("a"), cg("b")), cg("c"))},
		{"abc@@", NewConcat(cg("a"), NewConcat(cg("b"), cg("c")))},
		{"ab@c|*d@", NewConcat(NewStar(NewUnion(NewConcat(cg("a"), cg("b")), cg("c"))), cg("d"))},
		{"a.@?", NewUnion(Empty{}, NewConcat(cg("a"), cg("abc")))},
		{"ж*", NewStar(cg("ж"))},
	}
	for _, tt := range tests {
		t.Run(tt.postfix, func(t *testing.T) {
			got := mustParse(t, tt.postfix)
			assert.True(t, Equal(tt.want, got), "got\n%s", Sprint(got))
		})
	}
}

func TestParseOptionalUsesSourceMarker(t *testing.T) {
	n := mustParse(t, "a?")
	u, ok := n.(Union)
	assert.True(t, ok)
	assert.Equal(t, TagEmpty, u.Left().Tag())
	assert.Equal(t, TagCharGroup, u.Right().Tag())
}

func TestParseWildcardKeepsAlphabetOrder(t *testing.T) {
	src := fakeSource{alpha: []rune("zyx")}
	n, err := Parse(".", src)
	assert.NoError(t, err)
	g, ok := n.(CharGroup)
	assert.True(t, ok)
	assert.Equal(t, []rune("zyx"), g.Symbols())
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		postfix string
		pos     int
		token   rune
	}{
		{"", 0, 0},
		{"@", 0, '@'},
		{"|", 0, '|'},
		{"*", 0, '*'},
		{"?", 0, '?'},
		{"a@", 1, '@'},
		{"ab", 2, 0},
		{"ab@c@@", 5, '@'},
		{"ab@c@@d", 5, '@'},
		{"ab@c@d", 6, 0},
		{"ab@c|d*", 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.postfix, func(t *testing.T) {
			n, err := Parse(tt.postfix, abc)
			assert.Error(t, err)
			assert.Zero(t, n)
			assert.True(t, errors.Is(err, ErrMalformed))
			var se *SyntaxError
			assert.True(t, errors.As(err, &se))
			assert.Equal(t, tt.pos, se.Pos)
			assert.Equal(t, tt.token, se.Token)
		})
	}
}

func TestParseNeedsSource(t *testing.T) {
	_, err := Parse("a?", nil)
	assert.IsError(t, err, ErrNoSymbolSource)
	_, err = Parse(".", nil)
	assert.IsError(t, err, ErrNoSymbolSource)
	_, err = Parse(".", fakeSource{})
	assert.IsError(t, err, ErrNoSymbolSource)

	n, err := Parse("ab|*", nil)
	assert.NoError(t, err)
	assert.Equal(t, TagStar, n.Tag())
}

func TestParseDeterministic(t *testing.T) {
	for _, p := range []string{"ab@c|*d@", "a.?@b*|", "."} {
		a := mustParse(t, p)
		b := mustParse(t, p)
		assert.True(t, Equal(a, b))
		assert.Equal(t, Sprint(a), Sprint(b))
	}
}

func TestWildcardGroupsAreIndependent(t *testing.T) {
	n := mustParse(t, "..@")
	c := n.(Concat)
	left := c.Left().(CharGroup).Symbols()
	left[0] = 'q'
	assert.Equal(t, []rune("abc"), c.Left().(CharGroup).Symbols())
	assert.Equal(t, []rune("abc"), c.Right().(CharGroup).Symbols())
}

func TestCount(t *testing.T) {
	assert.Equal(t, 1, Count(mustParse(t, "a")))
	assert.Equal(t, 8, Count(mustParse(t, "ab@c|*d@")))
}

type nilMarkerSource struct{}

func (nilMarkerSource) Empty() Node { return nil }
func (nilMarkerSource) Alphabet() []rune { return []rune("ab") }

func TestParseRejectsNilMarker(t *testing.T) {
	n, err := Parse("a?", nilMarkerSource{})
	assert.IsError(t, err, ErrNoSymbolSource)
	assert.Zero(t, n)

	n, err = Parse("a.@", nilMarkerSource{})
	assert.NoError(t, err)
	assert.Equal(t, TagConcat, n.Tag())
}
