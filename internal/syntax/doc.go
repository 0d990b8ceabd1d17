// Package syntax turns a regular expression in postfix notation into an
// immutable syntax tree for the automaton builder.
//
// Postfix operators: '@' concatenation, '|' union, '*' zero or more,
// '?' optional, '.' any symbol of the alphabet. Every other rune is a literal.
package syntax
