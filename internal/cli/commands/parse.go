package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/leapunit/internal/cli/output"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	As string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <expression>...",
		Short: "Parse unit expressions and show their structure",
		Long: `Parse one or more unit expressions and report their structure.

For each expression the command shows whether it is a base unit, a named
unit or a composite, its canonical rendering, the expansion of named units
into their parts, the base units it reduces to and its combined scale.

Expressions use spaces or '*' between factors, '^n' or superscript digits
for exponents, and a single '/' to divide: "kg m/s^2", "km/h", "m²".`,
		Example: `  leapunit parse "kN m"
  leapunit parse km/h m/s
  leapunit parse --as W "J s^-1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "Name the parsed unit with this symbol")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	infos := make([]output.UnitInfo, 0, len(args))
	for _, expr := range args {
		u, err := cmdCtx.Registry.ParseAs(expr, opts.As)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", expr, err)
		}
		cmdCtx.Logger.Debug("parsed unit expression",
			"expression", expr,
			"unit", u.String(),
			"base_units", u.BaseUnitString())
		infos = append(infos, describeUnit(expr, u))
	}

	if handled, err := r.Structured(infos); handled {
		return err
	}

	for i, info := range infos {
		if i > 0 {
			r.Println("")
		}
		renderUnitInfo(r, info)
	}
	return nil
}

// renderUnitInfo writes a unit description in text or markdown.
func renderUnitInfo(r *output.Renderer, info output.UnitInfo) {
	r.Header(2, info.Expression)
	r.KeyValue("Kind", info.Kind)
	if info.Symbol != "" {
		r.KeyValue("Symbol", info.Symbol)
	}
	if info.Category != "" {
		r.KeyValue("Category", info.Category)
	}
	r.KeyValue("Unit", info.Canonical)
	if info.Expanded != info.Canonical {
		r.KeyValue("Expanded", info.Expanded)
	}
	r.KeyValue("Base units", info.BaseUnits)
	r.KeyValue("Combined scale", strconv.FormatFloat(info.CombinedScale, 'g', -1, 64))

	if len(info.Parts) == 0 {
		return
	}
	r.Println("")
	rows := make([][]string, 0, len(info.Parts))
	for _, p := range info.Parts {
		rows = append(rows, []string{
			p.Expression,
			p.Kind,
			strconv.Itoa(p.Exponent),
			strconv.FormatFloat(p.Scale, 'g', -1, 64),
			p.BaseUnits,
		})
	}
	r.Table([]string{"Part", "Kind", "Exponent", "Scale", "Base units"}, rows)
}
