package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/leapunit/pkg/convert"
	"github.com/spf13/cobra"
)

const replPrompt = "leapunit> "

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive unit calculator",
		Long: `Start an interactive session for parsing, converting and formatting.

Each line is one of:
  <expression>               describe a unit, e.g. "kN m"
  <value> <unit> -> <unit>   convert a value, e.g. "36 km/h -> m/s"
  <value> <unit>             format a value in engineering notation

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	session := &replSession{cmdCtx: cmdCtx, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     replHistoryFile(),
		AutoComplete:    session.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(session.out, "leapunit REPL")
	_, _ = fmt.Fprintln(session.out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(session.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if session.handle(line) {
			return nil
		}
	}
}

// replHistoryFile returns the history path in the user's cache directory,
// or "" to disable history.
func replHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "leapunit")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

// replSession evaluates REPL lines against one registry.
type replSession struct {
	cmdCtx *CommandContext
	out    io.Writer
	errOut io.Writer
}

// handle evaluates one line and reports whether the session should end.
// Errors are printed and do not end the session.
func (s *replSession) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	if err := s.eval(line); err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
	return false
}

func (s *replSession) dotCommand(line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(s.out)
	case ".units":
		for _, u := range s.cmdCtx.Registry.Units() {
			_, _ = fmt.Fprintf(s.out, "%-8s %s\n", u.Symbol(), u.UnitString(true, true, true))
		}
	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

// eval dispatches on the line shape: conversion, formatting or description.
func (s *replSession) eval(line string) error {
	reg := s.cmdCtx.Registry
	precision := s.cmdCtx.Cfg.Precision

	if source, target, ok := strings.Cut(line, "->"); ok {
		valueText, fromText, ok := strings.Cut(strings.TrimSpace(source), " ")
		if !ok {
			return fmt.Errorf("expected <value> <unit> -> <unit>")
		}
		value, err := parseValue(valueText)
		if err != nil {
			return err
		}
		from, err := reg.Parse(fromText)
		if err != nil {
			return err
		}
		to, err := reg.Parse(strings.TrimSpace(target))
		if err != nil {
			return err
		}
		conv, err := convert.NewConverter(from, to)
		if err != nil {
			return err
		}
		f := convert.NewFormatter(to, convert.WithPrecision(precision))
		_, _ = fmt.Fprintln(s.out, f.ValueString(conv.ConvertValue(value)))
		return nil
	}

	if valueText, unitText, ok := strings.Cut(line, " "); ok {
		if value, err := parseValue(valueText); err == nil {
			u, err := reg.Parse(unitText)
			if err != nil {
				return err
			}
			f := convert.NewFormatter(u, convert.WithPrecision(precision))
			_, _ = fmt.Fprintln(s.out, f.ValueString(value))
			return nil
		}
	}

	u, err := reg.Parse(line)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "%s = %s [%s] scale %s\n",
		u.String(), u.UnitString(true, true, true), u.BaseUnitString(), formatFloat(u.CombinedScale(), 0))
	return nil
}

// completer offers dot-commands and registered unit symbols.
func (s *replSession) completer() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".units"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	for _, u := range s.cmdCtx.Registry.Units() {
		items = append(items, readline.PcItem(u.Symbol()))
	}
	return readline.NewPrefixCompleter(items...)
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .units          List named units
  .quit / .exit   Exit the REPL

Input:
  kg m/s^2               Describe a unit expression
  36 km/h -> m/s         Convert a value
  1500 g                 Format a value in engineering notation
`
	_, _ = fmt.Fprintln(w, help)
}
