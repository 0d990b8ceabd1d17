package main

import (
	"fmt"

	"mygrep/internal/automaton"
	"mygrep/internal/infix"
	"mygrep/internal/syntax"
)

// toPostfix returns pattern in postfix notation, converting from infix
// unless --postfix was given.
func (c *Context) toPostfix(pattern string) (string, error) {
	if c.Postfix {
		return pattern, nil
	}
	postfix, err := infix.ToPostfix(pattern)
	if err != nil {
		return "", err
	}
	c.Log.Debug("converted to postfix", "pattern", pattern, "postfix", postfix)
	return postfix, nil
}

func (c *Context) translate(pattern string) (syntax.Node, error) {
	postfix, err := c.toPostfix(pattern)
	if err != nil {
		return nil, err
	}
	root, err := syntax.Parse(postfix, c.Symbols)
	if err != nil {
		return nil, fmt.Errorf("translate %q: %w", postfix, err)
	}
	c.Log.Debug("syntax tree built", "nodes", syntax.Count(root))
	return root, nil
}

func (c *Context) compile(pattern string) (*automaton.Machine, error) {
	root, err := c.translate(pattern)
	if err != nil {
		return nil, err
	}
	m := automaton.Compile(root, c.Minimize)
	c.Log.Debug("automaton compiled",
		"nfa_states", len(m.NFA.States),
		"raw_dfa_states", len(m.RawDFA.States),
		"dfa_states", len(m.DFA.States))
	return m, nil
}
