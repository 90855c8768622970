package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapunit/internal/cli/output"
	"github.com/leapstack-labs/leapunit/pkg/unit"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnitsOptions holds options for the units command.
type UnitsOptions struct {
	Category string
}

// NewUnitsCommand creates the units command.
func NewUnitsCommand() *cobra.Command {
	opts := &UnitsOptions{}

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the named units known to the parser",
		Long: `List the named units known to the parser, in registration order.

The built-in registry holds the newton (N) and the hour (h). Additional
units are defined under "units" in leapunit.yaml:

  units:
    - symbol: J
      definition: N m
      category: energy`,
		Example: `  leapunit units
  leapunit units --category energy -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUnits(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "Only list units of this category")

	return cmd
}

func runUnits(cmd *cobra.Command, opts *UnitsOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	list := output.UnitsOutput{Units: []output.RegisteredUnit{}}
	for _, u := range cmdCtx.Registry.Units() {
		if opts.Category != "" && !strings.EqualFold(u.Category(), opts.Category) {
			continue
		}
		list.Units = append(list.Units, registeredUnit(u))
	}
	list.Total = len(list.Units)

	if handled, err := r.Structured(list); handled {
		return err
	}

	r.Header(1, fmt.Sprintf("Units (%d total)", list.Total))
	if list.Total == 0 {
		r.Muted("No units registered.")
		return nil
	}
	r.Table([]string{"Symbol", "Category", "Definition", "Base units"}, unitRows(list.Units))
	return nil
}

func registeredUnit(u unit.Unit) output.RegisteredUnit {
	return output.RegisteredUnit{
		Symbol:     u.Symbol(),
		Category:   u.Category(),
		Definition: u.UnitString(true, true, true),
		BaseUnits:  u.BaseUnitString(),
	}
}

func unitRows(units []output.RegisteredUnit) [][]string {
	title := cases.Title(language.English)
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		category := "-"
		if u.Category != "" {
			category = title.String(u.Category)
		}
		rows = append(rows, []string{u.Symbol, category, u.Definition, u.BaseUnits})
	}
	return rows
}
