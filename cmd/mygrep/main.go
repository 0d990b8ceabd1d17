package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"mygrep/internal/alphabet"
	"mygrep/internal/config"
)

// errNoMatch makes match exit with status 1 without printing anything.
var errNoMatch = errors.New("no lines matched")

// Context is shared by every command.
type Context struct {
	Postfix  bool
	Minimize bool
	Symbols  *alphabet.Set
	Log      *slog.Logger
	Stdin    io.Reader
	Stdout   io.Writer
}

// CLI is the mygrep command line.
type CLI struct {
	Config  string `help:"Configuration file path" type:"path"`
	Verbose bool   `help:"Log every pipeline stage" short:"v"`
	Postfix bool   `help:"PATTERN is already in postfix notation" short:"p"`

	Postfixes PostfixCmd `cmd:"" name:"postfix" help:"Print the postfix form of a pattern"`
	Tree      TreeCmd    `cmd:"" help:"Print the syntax tree of a pattern"`
	Encode    EncodeCmd  `cmd:"" help:"Print the YAML encoding of the syntax tree"`
	Dot       DotCmd     `cmd:"" help:"Export the automaton as Graphviz DOT"`
	Match     MatchCmd   `cmd:"" help:"Print lines containing a match"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("mygrep"),
		kong.Description("Regular expressions through postfix notation, syntax trees and automata."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
		kong.UsageOnError(),
	)
	if err != nil {
		fail(stderr, err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fail(stderr, err)
		return 2
	}

	appCtx, err := newContext(&cli, stdin, stdout, stderr)
	if err != nil {
		fail(stderr, err)
		return 2
	}
	if err := kctx.Run(appCtx); err != nil {
		if errors.Is(err, errNoMatch) {
			return 1
		}
		fail(stderr, err)
		return 2
	}
	return 0
}

func newContext(cli *CLI, stdin io.Reader, stdout, stderr io.Writer) (*Context, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	symbols, err := cfg.Symbols()
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", "path", cli.Config, "alphabet_size", symbols.Len(), "minimize", cfg.ShouldMinimize())

	return &Context{
		Postfix:  cli.Postfix,
		Minimize: cfg.ShouldMinimize(),
		Symbols:  symbols,
		Log:      logger,
		Stdin:    stdin,
		Stdout:   stdout,
	}, nil
}

func fail(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}
