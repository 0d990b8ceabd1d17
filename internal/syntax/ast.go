package syntax

// Tag identifies the kind of an AST node.
type Tag int

const (
	TagCharGroup Tag = iota // one symbol out of a set
	TagConcat               // left then right
	TagUnion                // left or right
	TagStar                 // zero or more
	TagEmpty                // ε
)

func (t Tag) String() string {
	switch t {
	case TagCharGroup:
		return "CharGroup"
	case TagConcat:
		return "Concat"
	case TagUnion:
		return "Union"
	case TagStar:
		return "Star"
	case TagEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Node is an immutable regex syntax tree node. The set of implementations is
// closed: CharGroup, Concat, Union, Star and Empty.
type Node interface {
	Tag() Tag
	node()
}

// CharGroup matches exactly one symbol out of its set.
type CharGroup struct {
	symbols []rune
}

// Concat matches Left followed by Right.
type Concat struct {
	left, right Node
}

// Union matches either Left or Right.
type Union struct {
	left, right Node
}

// Star matches zero or more repetitions of its child.
type Star struct {
	child Node
}

// Empty matches the empty string.
type Empty struct{}

func (CharGroup) Tag() Tag { return TagCharGroup }
func (Concat) Tag() Tag { return TagConcat }
func (Union) Tag() Tag { return TagUnion }
func (Star) Tag() Tag { return TagStar }
func (Empty) Tag() Tag { return TagEmpty }

func (CharGroup) node() {}
func (Concat) node() {}
func (Union) node() {}
func (Star) node() {}
func (Empty) node() {}

// NewCharGroup copies symbols into a new group. It panics on an empty set.
func NewCharGroup(symbols ...rune) CharGroup {
	if len(symbols) == 0 {
		panic("syntax: empty char group")
	}
	return CharGroup{symbols: append([]rune(nil), symbols...)}
}

func NewConcat(left, right Node) Concat { return Concat{left: left, right: right} }
func NewUnion(left, right Node) Union { return Union{left: left, right: right} }
func NewStar(child Node) Star { return Star{child: child} }

// Symbols returns a copy of the group's symbols in stored order.
func (g CharGroup) Symbols() []rune { return append([]rune(nil), g.symbols...) }

// Len is the number of symbols in the group.
func (g CharGroup) Len() int { return len(g.symbols) }

func (c Concat) Left() Node { return c.left }
func (c Concat) Right() Node { return c.right }
func (u Union) Left() Node { return u.left }
func (u Union) Right() Node { return u.right }
func (s Star) Child() Node { return s.child }

// Children returns the sub-trees of n in order. Leaves have none.
func Children(n Node) []Node {
	switch t := n.(type) {
	case Concat:
		return []Node{t.left, t.right}
	case Union:
		return []Node{t.left, t.right}
	case Star:
		return []Node{t.child}
	default:
		return nil
	}
}

// Equal reports whether a and b have the same shape and symbols.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch x := a.(type) {
	case CharGroup:
		y, ok := b.(CharGroup)
		if !ok || len(x.symbols) != len(y.symbols) {
			return false
		}
		for i := range x.symbols {
			if x.symbols[i] != y.symbols[i] {
				return false
			}
		}
		return true
	case Empty:
		return true
	}
	ac, bc := Children(a), Children(b)
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 1
	for _, c := range Children(n) {
		total += Count(c)
	}
	return total
}
