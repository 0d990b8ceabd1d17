package syntax

import (
	"fmt"
	"io"
	"strings"
)

const indentUnit = "  "

// Fprint writes an indented rendering of n to w, one tag per line starting at
// depth. A CharGroup is followed by a line with its symbols at depth+1.
// Negative depths print at depth zero.
func Fprint(w io.Writer, n Node, depth int) error {
	if n == nil {
		return ErrNilNode
	}
	depth = max(depth, 0)
	pad := strings.Repeat(indentUnit, depth)
	if _, err := fmt.Fprintf(w, "%s%s\n", pad, n.Tag()); err != nil {
		return err
	}
	if g, ok := n.(CharGroup); ok {
		_, err := fmt.Fprintf(w, "%s%s%s\n", pad, indentUnit, string(g.symbols))
		return err
	}
	for _, c := range Children(n) {
		if err := Fprint(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Sprint renders n at depth zero.
func Sprint(n Node) string {
	var b strings.Builder
	_ = Fprint(&b, n, 0)
	return b.String()
}
