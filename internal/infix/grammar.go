package infix

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Every symbol is one rune. '@' has no rule: it is the postfix concatenation
// operator and cannot appear as a literal.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Punct", Pattern: `[|*?+()]`},
	{Name: "Any", Pattern: `\.`},
	{Name: "Char", Pattern: `[^|*?+().@]`},
})

type Alternation struct {
	Branches []*Sequence `parser:"@@ ( '|' @@ )*"`
}

type Sequence struct {
	Terms []*Term `parser:"@@+"`
}

type Term struct {
	Atom  *Atom    `parser:"@@"`
	Postf []string `parser:"@( '*' | '?' | '+' )*"`
}

type Atom struct {
	Any   bool         `parser:"  @Any"`
	Char  *string      `parser:"| @Char"`
	Group *Alternation `parser:"| '(' @@ ')'"`
}

var parser = participle.MustBuild[Alternation](
	participle.Lexer(regexLexer),
)
