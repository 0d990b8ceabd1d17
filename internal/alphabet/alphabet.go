package alphabet

import (
	"errors"
	"fmt"
	"sort"

	"mygrep/internal/syntax"
)

var (
	ErrEmpty         = errors.New("alphabet has no symbols")
	ErrDuplicate     = errors.New("alphabet symbol listed twice")
	ErrUnknownPreset = errors.New("unknown alphabet preset")
)

// Set is an ordered, duplicate-free list of symbols. It is the symbol source
// the postfix translator expands '.' with.
type Set struct {
	symbols []rune
	index   map[rune]int
}

var _ syntax.SymbolSource = (*Set)(nil)

// New builds a set from symbols in the given order.
func New(symbols []rune) (*Set, error) {
	if len(symbols) == 0 {
		return nil, ErrEmpty
	}
	s := &Set{symbols: append([]rune(nil), symbols...), index: make(map[rune]int, len(symbols))}
	for i, r := range s.symbols {
		if _, dup := s.index[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, r)
		}
		s.index[r] = i
	}
	return s, nil
}

// FromString is New over the runes of s.
func FromString(s string) (*Set, error) { return New([]rune(s)) }

// Empty returns the empty-match leaf.
func (s *Set) Empty() syntax.Node { return syntax.Empty{} }

// Alphabet returns a copy of the symbols in their defined order.
func (s *Set) Alphabet() []rune { return append([]rune(nil), s.symbols...) }

func (s *Set) Len() int { return len(s.symbols) }

func (s *Set) Contains(r rune) bool {
	_, ok := s.index[r]
	return ok
}

func (s *Set) String() string { return string(s.symbols) }

// Presets are the named alphabets selectable from the configuration.
var presets = map[string]func() []rune{
	"ascii": func() []rune { return span(' ', '~') },
	"lower": func() []rune { return span('a', 'z') },
	"alnum": func() []rune {
		out := span('0', '9')
		out = append(out, span('A', 'Z')...)
		return append(out, span('a', 'z')...)
	},
}

// Preset returns the named alphabet.
func Preset(name string) (*Set, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return New(build())
}

// PresetNames lists the known preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ASCII is the printable ASCII range, space to tilde.
func ASCII() *Set {
	s, _ := Preset("ascii")
	return s
}

func span(from, to rune) []rune {
	out := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		out = append(out, r)
	}
	return out
}
