package syntax

import (
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
)

// record is the wire form of a node: a tag, the symbols of a CharGroup and
// the children of every other tag. Symbols are code points so that control
// characters and YAML-special scalars survive the round trip.
type record struct {
	Tag      string    `yaml:"tag"`
	Symbols  []int    `yaml:"symbols,omitempty"`
	Children []*record `yaml:"children,omitempty"`
}

// Encode serialises the tree rooted at n as YAML.
func Encode(n Node) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, ErrNilNode)
	}
	return yaml.Marshal(toRecord(n))
}

// Decode rebuilds a tree written by Encode.
func Decode(data []byte) (Node, error) {
	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return fromRecord(&r)
}

func toRecord(n Node) *record {
	r := &record{Tag: n.Tag().String()}
	if g, ok := n.(CharGroup); ok {
		r.Symbols = make([]int, len(g.symbols))
		for i, sym := range g.symbols {
			r.Symbols[i] = int(sym)
		}
		return r
	}
	for _, c := range Children(n) {
		r.Children = append(r.Children, toRecord(c))
	}
	return r
}

func fromRecord(r *record) (Node, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: missing child", ErrInvalidEncoding)
	}
	arity := map[string]int{"CharGroup": 0, "Empty": 0, "Star": 1, "Concat": 2, "Union": 2}
	want, ok := arity[r.Tag]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidEncoding, r.Tag)
	}
	if len(r.Children) != want {
		return nil, fmt.Errorf("%w: %s has %d children, want %d", ErrInvalidEncoding, r.Tag, len(r.Children), want)
	}
	kids := make([]Node, len(r.Children))
	for i, c := range r.Children {
		n, err := fromRecord(c)
		if err != nil {
			return nil, err
		}
		kids[i] = n
	}

	switch r.Tag {
	case "CharGroup":
		if len(r.Symbols) == 0 {
			return nil, fmt.Errorf("%w: CharGroup without symbols", ErrInvalidEncoding)
		}
		symbols := make([]rune, len(r.Symbols))
		for i, cp := range r.Symbols {
			if cp < 0 || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
				return nil, fmt.Errorf("%w: invalid code point %d", ErrInvalidEncoding, cp)
			}
			symbols[i] = rune(cp)
		}
		return NewCharGroup(symbols...), nil
	case "Empty":
		if len(r.Symbols) != 0 {
			return nil, fmt.Errorf("%w: Empty with symbols", ErrInvalidEncoding)
		}
		return Empty{}, nil
	case "Star":
		return NewStar(kids[0]), nil
	case "Concat":
		return NewConcat(kids[0], kids[1]), nil
	default:
		return NewUnion(kids[0], kids[1]), nil
	}
}
