package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is the single failure category of the translator: the
	// token stream does not reduce to exactly one expression.
	ErrMalformed = errors.New("malformed postfix sequence")
	// ErrNoSymbolSource is returned when '.' or '?' appear but no symbol source was given.
	ErrNoSymbolSource = errors.New("postfix sequence needs a symbol source")
	// ErrNilNode is returned when a nil node is given where a tree is expected.
	ErrNilNode = errors.New("nil syntax node")
	// ErrInvalidEncoding is returned by Decode for records that do not describe a valid tree.
	ErrInvalidEncoding = errors.New("invalid tree encoding")
)

// SyntaxError pinpoints where a postfix sequence stopped reducing.
type SyntaxError struct {
	Pos    int  // token index, or the token count for end-of-input errors
	Token  rune // offending operator, 0 at end of input
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Token == 0 {
		return fmt.Sprintf("%v: %s at end of input (position %d)", ErrMalformed, e.Reason, e.Pos)
	}
	return fmt.Sprintf("%v: %s at position %d (%q)", ErrMalformed, e.Reason, e.Pos, e.Token)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformed }
