// Package infix converts conventional regex syntax into the postfix token
// stream understood by package syntax.
//
// Supported: literals, '.', grouping with parentheses, alternation '|', and
// the postfix quantifiers '*', '?' and '+'. Concatenation is implicit.
package infix

import (
	"errors"
	"fmt"
	"strings"

	"mygrep/internal/syntax"
)

var ErrSyntax = errors.New("invalid regular expression")

// Parse returns the grammar tree of an infix pattern.
func Parse(pattern string) (*Alternation, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrSyntax)
	}
	ast, err := parser.ParseString("pattern", pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return ast, nil
}

// MaxPostfixLen bounds the postfix form in bytes. '+' copies its operand,
// so nested repetitions grow the output geometrically.
const MaxPostfixLen = 1 << 16

// ToPostfix converts an infix pattern into postfix notation.
// "a(b|c)*" becomes "abc|*@".
func ToPostfix(pattern string) (string, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := ast.emit(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func tooLong(n int) error {
	if n > MaxPostfixLen {
		return fmt.Errorf("%w: postfix form exceeds %d bytes", ErrSyntax, MaxPostfixLen)
	}
	return nil
}

func (a *Alternation) emit(b *strings.Builder) error {
	for i, s := range a.Branches {
		if err := s.emit(b); err != nil {
			return err
		}
		if i > 0 {
			b.WriteRune(syntax.OpUnion)
		}
	}
	return tooLong(b.Len())
}

func (s *Sequence) emit(b *strings.Builder) error {
	for i, t := range s.Terms {
		if err := t.emit(b); err != nil {
			return err
		}
		if i > 0 {
			b.WriteRune(syntax.OpConcat)
		}
		if err := tooLong(b.Len()); err != nil {
			return err
		}
	}
	return nil
}

// foldQuantifiers reduces a run of postfix quantifiers to one with the same
// language: equal ones collapse and any two different ones give '*'.
func foldQuantifiers(ops []string) string {
	q := ""
	for _, op := range ops {
		switch {
		case q == "" || q == op:
			q = op
		default:
			q = "*"
		}
	}
	return q
}

func (t *Term) emit(b *strings.Builder) error {
	var atom strings.Builder
	if err := t.Atom.emit(&atom); err != nil {
		return err
	}
	cur := atom.String()
	switch foldQuantifiers(t.Postf) {
	case "*":
		cur += string(syntax.OpStar)
	case "?":
		cur += string(syntax.OpOptional)
	case "+":
		// x+ == x x* @
		if err := tooLong(2*len(cur) + 2); err != nil {
			return err
		}
		cur = cur + cur + string(syntax.OpStar) + string(syntax.OpConcat)
	}
	b.WriteString(cur)
	return nil
}

func (a *Atom) emit(b *strings.Builder) error {
	switch {
	case a.Any:
		b.WriteRune(syntax.OpAny)
	case a.Char != nil:
		b.WriteString(*a.Char)
	case a.Group != nil:
		return a.Group.emit(b)
	}
	return nil
}
