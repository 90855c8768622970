package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/leapunit/internal/cli/output"
	"github.com/spf13/cobra"
)

// CompareOptions holds options for the compare command.
type CompareOptions struct {
	Strict bool
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two unit expressions",
		Long: `Compare two unit expressions.

Two units are compatible when they reduce to the same base units, and
equal when their combined scales also match. For compatible units the
factor converting a value of <a> into <b> is shown.

With --strict the command fails unless the units are equal.`,
		Example: `  leapunit compare "kg m s^-2" N
  leapunit compare km/h m/s
  leapunit compare --strict kN "Mg m s^-2"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail unless the units are equal")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, opts *CompareOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	a, err := cmdCtx.Registry.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", args[0], err)
	}
	b, err := cmdCtx.Registry.Parse(args[1])
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", args[1], err)
	}

	result := output.CompareOutput{
		Left:           args[0],
		Right:          args[1],
		LeftBaseUnits:  a.BaseUnitString(),
		RightBaseUnits: b.BaseUnitString(),
		SameBaseUnits:  a.HasSameBaseUnits(b),
		Equal:          a.IsEqual(b),
	}
	if result.SameBaseUnits {
		if result.Factor, err = b.FactorFrom(a); err != nil {
			return err
		}
	}

	if handled, err := r.Structured(result); handled {
		if err != nil {
			return err
		}
		return strictResult(opts, result)
	}

	s := r.Styles()
	r.Header(2, fmt.Sprintf("%s vs %s", result.Left, result.Right))
	r.KeyValue(result.Left, result.LeftBaseUnits)
	r.KeyValue(result.Right, result.RightBaseUnits)
	switch {
	case result.Equal:
		r.KeyValue("Result", s.Success.Render("equal"))
	case result.SameBaseUnits:
		r.KeyValue("Result", s.Warning.Render("compatible"))
		r.KeyValue("Factor", strconv.FormatFloat(result.Factor, 'g', -1, 64))
	default:
		r.KeyValue("Result", s.Error.Render("incompatible"))
	}

	return strictResult(opts, result)
}

func strictResult(opts *CompareOptions, result output.CompareOutput) error {
	if opts.Strict && !result.Equal {
		return fmt.Errorf("units %q and %q are not equal", result.Left, result.Right)
	}
	return nil
}
