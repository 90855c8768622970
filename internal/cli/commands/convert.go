package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapunit/internal/cli/output"
	"github.com/leapstack-labs/leapunit/pkg/convert"
	"github.com/spf13/cobra"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	From   string
	To     string
	Pretty bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <value>... --from <unit> --to <unit>",
		Short: "Convert values between compatible units",
		Long: `Convert one or more values from one unit to another.

Both units must reduce to the same base units; "km/h" converts to "m/s"
but not to "m". In text mode one converted value is printed per line.
Use --pretty to move powers of 1000 into the target unit's prefix.`,
		Example: `  leapunit convert 36 --from km/h --to m/s
  leapunit convert 1 2.5 --from kN --to "kg m s^-2"
  leapunit convert --from m --to km -- -1500`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Unit of the input values")
	cmd.Flags().StringVar(&opts.To, "to", "", "Unit to convert to")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "Render results in engineering notation")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *ConvertOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	values := make([]float64, len(args))
	for i, arg := range args {
		if values[i], err = parseValue(arg); err != nil {
			return err
		}
	}

	from, err := cmdCtx.Registry.Parse(opts.From)
	if err != nil {
		return fmt.Errorf("failed to parse --from %q: %w", opts.From, err)
	}
	to, err := cmdCtx.Registry.Parse(opts.To)
	if err != nil {
		return fmt.Errorf("failed to parse --to %q: %w", opts.To, err)
	}

	conv, err := convert.NewConverter(from, to)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("created converter",
		"from", from.String(),
		"to", to.String(),
		"factor", conv.Factor())

	results := conv.ConvertValues(values)

	result := output.ConversionOutput{
		From:        opts.From,
		To:          opts.To,
		Factor:      conv.Factor(),
		Conversions: make([]output.ConvertedValue, len(values)),
	}
	for i := range values {
		result.Conversions[i] = output.ConvertedValue{Input: values[i], Output: results[i]}
	}
	if handled, err := r.Structured(result); handled {
		return err
	}

	render := func(v float64) string { return formatFloat(v, cmdCtx.Cfg.Precision) }
	if opts.Pretty {
		f := convert.NewFormatter(to, convert.WithPrecision(cmdCtx.Cfg.Precision))
		render = f.ValueString
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		rows := make([][]string, len(values))
		for i := range values {
			rows[i] = []string{formatFloat(values[i], cmdCtx.Cfg.Precision), render(results[i])}
		}
		r.Header(2, fmt.Sprintf("%s → %s", opts.From, opts.To))
		r.Table([]string{opts.From, opts.To}, rows)
		return nil
	}

	for _, v := range results {
		r.Println(render(v))
	}
	return nil
}
