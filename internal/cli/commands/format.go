package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapunit/internal/cli/output"
	"github.com/leapstack-labs/leapunit/pkg/convert"
	"github.com/spf13/cobra"
)

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <value> <unit>",
		Short: "Render a value in engineering notation",
		Long: `Render a value of the given unit in engineering notation, moving
powers of 1000 from the number into the unit's metric prefix:
1500 g becomes 1.5kg and 0.00015 g becomes 150µg.

Values that cannot be rescaled, such as kilo-steps on squared units, are
printed as plain numbers. --precision limits the significant digits.`,
		Example: `  leapunit format 1500 g
  leapunit format 0.00015 "g m^-1"
  leapunit format --precision 3 123456 Hz`,
		Args: cobra.ExactArgs(2),
		RunE: runFormat,
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	value, err := parseValue(args[0])
	if err != nil {
		return err
	}
	u, err := cmdCtx.Registry.Parse(args[1])
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", args[1], err)
	}

	f := convert.NewFormatter(u, convert.WithPrecision(cmdCtx.Cfg.Precision))
	result := output.FormatOutput{
		Value:     value,
		Unit:      args[1],
		Formatted: f.ValueString(value),
	}

	if handled, err := r.Structured(result); handled {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatCode(result.Formatted))
		return nil
	}
	r.Println(r.Styles().Value.Render(result.Formatted))
	return nil
}
