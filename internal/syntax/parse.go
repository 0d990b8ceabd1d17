package syntax

import "fmt"

// Reserved postfix operator tokens.
const (
	OpConcat   = '@'
	OpUnion    = '|'
	OpStar     = '*'
	OpOptional = '?'
	OpAny      = '.'
)

// SymbolSource supplies the empty-match leaf used by '?' and the ordered
// alphabet that '.' expands to.
type SymbolSource interface {
	Empty() Node
	Alphabet() []rune
}

// IsOperator reports whether r is one of the reserved postfix operators.
func IsOperator(r rune) bool {
	switch r {
	case OpConcat, OpUnion, OpStar, OpOptional, OpAny:
		return true
	}
	return false
}

// Parse builds the syntax tree of a regex in postfix form, one rune per token.
func Parse(postfix string, src SymbolSource) (Node, error) {
	return ParseTokens([]rune(postfix), src)
}

// ParseTokens builds the syntax tree of a postfix token sequence. The result is
// the only value left on the operand stack; anything else is ErrMalformed.
func ParseTokens(tokens []rune, src SymbolSource) (Node, error) {
	var stack []Node

	pop := func() Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}
	need := func(pos int, tok rune, arity int) error {
		if len(stack) >= arity {
			return nil
		}
		return &SyntaxError{
			Pos:    pos,
			Token:  tok,
			Reason: fmt.Sprintf("operator needs %d operand(s), have %d", arity, len(stack)),
		}
	}

	for pos, tok := range tokens {
		switch tok {
		case OpConcat, OpUnion:
			if err := need(pos, tok, 2); err != nil {
				return nil, err
			}
			right, left := pop(), pop()
			if tok == OpConcat {
				stack = append(stack, NewConcat(left, right))
			} else {
				stack = append(stack, NewUnion(left, right))
			}
		case OpStar:
			if err := need(pos, tok, 1); err != nil {
				return nil, err
			}
			stack = append(stack, NewStar(pop()))
		case OpOptional:
			if err := need(pos, tok, 1); err != nil {
				return nil, err
			}
			if src == nil {
				return nil, fmt.Errorf("%w: '?' at position %d", ErrNoSymbolSource, pos)
			}
			empty := src.Empty()
			if empty == nil {
				return nil, fmt.Errorf("%w: nil empty-match marker for '?' at position %d", ErrNoSymbolSource, pos)
			}
			stack = append(stack, NewUnion(empty, pop()))
		case OpAny:
			if src == nil {
				return nil, fmt.Errorf("%w: '.' at position %d", ErrNoSymbolSource, pos)
			}
			alpha := src.Alphabet()
			if len(alpha) == 0 {
				return nil, fmt.Errorf("%w: empty alphabet for '.' at position %d", ErrNoSymbolSource, pos)
			}
			stack = append(stack, NewCharGroup(alpha...))
		default:
			stack = append(stack, NewCharGroup(tok))
		}
	}

	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return nil, &SyntaxError{Pos: len(tokens), Reason: "empty expression"}
	default:
		return nil, &SyntaxError{
			Pos:    len(tokens),
			Reason: fmt.Sprintf("%d expressions left unjoined", len(stack)),
		}
	}
}
