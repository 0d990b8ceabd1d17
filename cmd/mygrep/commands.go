package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"mygrep/internal/automaton"
	"mygrep/internal/syntax"
)

type PostfixCmd struct {
	Pattern string `arg:"" help:"Regular expression"`
}

func (cmd *PostfixCmd) Run(ctx *Context) error {
	postfix, err := ctx.toPostfix(cmd.Pattern)
	if err != nil {
		return err
	}
	// reject sequences that do not reduce before printing them
	if _, err := syntax.Parse(postfix, ctx.Symbols); err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Stdout, postfix)
	return err
}

type TreeCmd struct {
	Pattern string `arg:"" help:"Regular expression"`
}

func (cmd *TreeCmd) Run(ctx *Context) error {
	root, err := ctx.translate(cmd.Pattern)
	if err != nil {
		return err
	}
	return syntax.Fprint(ctx.Stdout, root, 0)
}

type EncodeCmd struct {
	Pattern string `arg:"" help:"Regular expression"`
}

func (cmd *EncodeCmd) Run(ctx *Context) error {
	root, err := ctx.translate(cmd.Pattern)
	if err != nil {
		return err
	}
	data, err := syntax.Encode(root)
	if err != nil {
		return err
	}
	_, err = ctx.Stdout.Write(data)
	return err
}

type DotCmd struct {
	Pattern    string `arg:"" help:"Regular expression"`
	NFA        bool   `help:"Export the Thompson NFA" name:"nfa" xor:"graph"`
	Raw        bool   `help:"Export the DFA before minimisation" xor:"graph"`
	Intersect  string `help:"Intersect with the language of another pattern" placeholder:"PATTERN" xor:"combine"`
	Union      string `help:"Unite with the language of another pattern" placeholder:"PATTERN" xor:"combine"`
	Complement bool   `help:"Complement the language over its alphabet"`
	Reverse    bool   `help:"Reverse every word of the language"`
	Output     string `help:"Output file, - for stdout" short:"o" default:"-"`
}

func (cmd *DotCmd) transforms() bool {
	return cmd.Intersect != "" || cmd.Union != "" || cmd.Complement || cmd.Reverse
}

func (cmd *DotCmd) Run(ctx *Context) error {
	if cmd.NFA && cmd.transforms() {
		return errors.New("--nfa cannot be combined with DFA operations")
	}
	m, err := ctx.compile(cmd.Pattern)
	if err != nil {
		return err
	}
	var graph any = m.DFA
	switch {
	case cmd.NFA:
		graph = m.NFA
	case cmd.Raw:
		graph = m.RawDFA
	case cmd.transforms():
		d, err := cmd.transform(ctx, m.DFA)
		if err != nil {
			return err
		}
		graph = d
	}

	if cmd.Output == "-" {
		return automaton.WriteDOT(ctx.Stdout, graph)
	}
	f, err := os.Create(cmd.Output)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", cmd.Output, err)
	}
	defer f.Close()
	if err := automaton.WriteDOT(f, graph); err != nil {
		return err
	}
	ctx.Log.Info("DOT written", "path", cmd.Output)
	return f.Close()
}

// transform applies the set operations in a fixed order: combine with the
// other pattern, complement, then reverse.
func (cmd *DotCmd) transform(ctx *Context, d *automaton.DFA) (*automaton.DFA, error) {
	if other := cmd.Intersect + cmd.Union; other != "" {
		om, err := ctx.compile(other)
		if err != nil {
			return nil, fmt.Errorf("second pattern: %w", err)
		}
		if cmd.Intersect != "" {
			d = automaton.Intersect(d, om.DFA)
		} else {
			d = automaton.Union(d, om.DFA)
		}
	}
	if cmd.Complement {
		d = automaton.Complement(d)
	}
	if cmd.Reverse {
		d = automaton.Reverse(d)
	}
	if ctx.Minimize {
		d = automaton.Minimize(d)
	}
	ctx.Log.Debug("DFA transformed", "states", len(d.States))
	return d, nil
}

type MatchCmd struct {
	Pattern    string   `arg:"" help:"Regular expression"`
	Files      []string `arg:"" optional:"" type:"existingfile" help:"Input files, stdin when omitted"`
	Whole      bool     `help:"Only match whole lines" short:"x"`
	Count      bool     `help:"Print only the number of matching lines" short:"c"`
	LineNumber bool     `help:"Prefix lines with their line number" short:"n"`
}

func (cmd *MatchCmd) Run(ctx *Context) error {
	m, err := ctx.compile(cmd.Pattern)
	if err != nil {
		return err
	}

	total := 0
	if len(cmd.Files) == 0 {
		n, err := cmd.scan(ctx, m.DFA, ctx.Stdin, "")
		if err != nil {
			return err
		}
		total += n
	}
	for _, path := range cmd.Files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		prefix := ""
		if len(cmd.Files) > 1 {
			prefix = path
		}
		n, err := cmd.scan(ctx, m.DFA, f, prefix)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		total += n
	}

	ctx.Log.Debug("match finished", "lines", total)
	if total == 0 {
		return errNoMatch
	}
	return nil
}

func (cmd *MatchCmd) scan(ctx *Context, d *automaton.DFA, r io.Reader, name string) (int, error) {
	highlight := color.New(color.FgRed, color.Bold).SprintFunc()
	sc := bufio.NewScanner(r)
	matched := 0
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		var start, end int
		var ok bool
		if cmd.Whole {
			ok, start, end = d.Accepts(line), 0, len(line)
		} else {
			start, end, ok = d.FindIndex(line)
		}
		if !ok {
			continue
		}
		matched++
		if cmd.Count {
			continue
		}
		out := line[:start] + highlight(line[start:end]) + line[end:]
		if cmd.LineNumber {
			out = fmt.Sprintf("%d:%s", lineNo, out)
		}
		if name != "" {
			out = name + ":" + out
		}
		if _, err := fmt.Fprintln(ctx.Stdout, out); err != nil {
			return matched, err
		}
	}
	if err := sc.Err(); err != nil {
		return matched, err
	}
	if cmd.Count {
		label := ""
		if name != "" {
			label = name + ":"
		}
		if _, err := fmt.Fprintf(ctx.Stdout, "%s%d\n", label, matched); err != nil {
			return matched, err
		}
	}
	return matched, nil
}
