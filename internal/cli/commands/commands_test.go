package commands

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapunit/internal/cli/config"
	"github.com/leapstack-labs/leapunit/internal/cli/output"
	"github.com/leapstack-labs/leapunit/internal/cli/testutil"
	"github.com/leapstack-labs/leapunit/pkg/unit"
)

// runCommand executes cmd with args and returns stdout and stderr.
// Output mode and precision come from the LEAPUNIT_ environment fallback.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand_JSON(t *testing.T) {
	t.Setenv("LEAPUNIT_OUTPUT", "json")

	stdout, _, err := runCommand(t, NewParseCommand(), "kN m")
	require.NoError(t, err)

	var infos []output.UnitInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, "kN m", info.Expression)
	assert.Equal(t, kindComposite, info.Kind)
	assert.Equal(t, "kN m", info.Canonical)
	assert.Equal(t, "g m m s^-2", info.BaseUnits)
	assert.Equal(t, 1e6, info.CombinedScale)

	require.Len(t, info.Parts, 2)
	assert.Equal(t, kindNamed, info.Parts[0].Kind)
	assert.Equal(t, "N", info.Parts[0].Symbol)
	assert.Equal(t, "force", info.Parts[0].Category)
	assert.Equal(t, 1000.0, info.Parts[0].Scale)
	assert.Equal(t, kindBase, info.Parts[1].Kind)
}

func TestParseCommand_As(t *testing.T) {
	t.Setenv("LEAPUNIT_OUTPUT", "yaml")

	stdout, _, err := runCommand(t, NewParseCommand(), "--as", "W", "N m s^-1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "kind: named")
	assert.Contains(t, stdout, "symbol: W")
	assert.Contains(t, stdout, "base_units: g m m s^-2 s^-1")
}

func TestParseCommand_Markdown(t *testing.T) {
	t.Setenv("LEAPUNIT_OUTPUT", "markdown")

	stdout, _, err := runCommand(t, NewParseCommand(), "km/h", "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "## km/h")
	assert.Contains(t, stdout, "- **Kind:** composite")
	assert.Contains(t, stdout, "- **Base units:** m s^-1")
	assert.Contains(t, stdout, "- **Expanded:** km 3600s^-1")
	assert.Contains(t, stdout, "## 1")
	assert.Contains(t, stdout, "- **Kind:** dimensionless")
}

func TestParseCommand_Errors(t *testing.T) {
	t.Setenv("LEAPUNIT_OUTPUT", "json")

	_, _, err := runCommand(t, NewParseCommand(), "m^x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to parse "m^x"`)

	var expErr *unit.MalformedExponentError
	assert.ErrorAs(t, err, &expErr)

	_, _, err = runCommand(t, NewParseCommand())
	assert.Error(t, err, "at least one expression is required")
}

func TestConvertCommand(t *testing.T) {
	t.Run("text prints one value per line", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "text")

		stdout, _, err := runCommand(t, NewConvertCommand(), "1", "2.5", "--from", "km", "--to", "m")
		require.NoError(t, err)
		assert.Equal(t, "1000\n2500\n", stdout)
	})

	t.Run("named unit to its definition", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "text")

		stdout, _, err := runCommand(t, NewConvertCommand(), "1", "2.5", "--from", "kN", "--to", "kg m s^-2")
		require.NoError(t, err)
		assert.Equal(t, "1000\n2500\n", stdout)
	})

	t.Run("pretty uses engineering notation", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "text")

		stdout, _, err := runCommand(t, NewConvertCommand(), "1500", "--from", "m", "--to", "m", "--pretty")
		require.NoError(t, err)
		assert.Equal(t, "1.5km\n", stdout)
	})

	t.Run("negative values after separator", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "text")

		stdout, _, err := runCommand(t, NewConvertCommand(), "--from", "m", "--to", "km", "--", "-1500")
		require.NoError(t, err)
		assert.Equal(t, "-1.5\n", stdout)
	})

	t.Run("json reports factor", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "json")

		stdout, _, err := runCommand(t, NewConvertCommand(), "36", "72", "--from", "km/h", "--to", "m/s")
		require.NoError(t, err)

		var result output.ConversionOutput
		require.NoError(t, json.Unmarshal([]byte(stdout), &result))
		assert.Equal(t, "km/h", result.From)
		assert.InEpsilon(t, 1/3.6, result.Factor, 1e-12)
		require.Len(t, result.Conversions, 2)
		assert.InEpsilon(t, 10.0, result.Conversions[0].Output, 1e-12)
		assert.InEpsilon(t, 20.0, result.Conversions[1].Output, 1e-12)
	})

	t.Run("markdown table", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "markdown")

		stdout, _, err := runCommand(t, NewConvertCommand(), "3", "--from", "h", "--to", "s")
		require.NoError(t, err)
		assert.Contains(t, stdout, "## h → s")
		assert.Contains(t, stdout, "| 3 | 10800 |")
	})

	t.Run("precision", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "text")
		t.Setenv("LEAPUNIT_PRECISION", "3")

		stdout, _, err := runCommand(t, NewConvertCommand(), "1", "--from", "s", "--to", "h")
		require.NoError(t, err)
		assert.Equal(t, "0.000278\n", stdout)
	})
}

func TestConvertCommand_Errors(t *testing.T) {
	t.Setenv("LEAPUNIT_OUTPUT", "text")

	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"missing to", []string{"1", "--from", "m"}, `required flag(s) "to" not set`},
		{"bad value", []string{"abc", "--from", "m", "--to", "km"}, `invalid value "abc"`},
		{"bad from", []string{"1", "--from", "m^", "--to", "km"}, "failed to parse --from"},
		{"bad to", []string{"1", "--from", "m", "--to", "/s"}, "failed to parse --to"},
		{"dimension mismatch", []string{"1", "--from", "m", "--to", "s"}, "different base units"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCommand(t, NewConvertCommand(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	_, _, err := runCommand(t, NewConvertCommand(), "1", "--from", "m", "--to", "s")
	var mismatch *unit.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "m", mismatch.From)
	assert.Equal(t, "s", mismatch.To)
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		precision string
		args      []string
		want      string
	}{
		{"kilo", "text", "", []string{"1500", "g"}, "1.5kg\n"},
		{"micro", "text", "", []string{"0.00015", "g"}, "150µg\n"},
		{"precision", "text", "3", []string{"123456", "Hz"}, "123kHz\n"},
		{"markdown", "markdown", "", []string{"2000", "m"}, "`2km`\n"},
		{"zero", "text", "", []string{"0", "m"}, "0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LEAPUNIT_OUTPUT", tt.mode)
			t.Setenv("LEAPUNIT_PRECISION", tt.precision)

			stdout, _, err := runCommand(t, NewFormatCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestFormatCommand_JSON(t *testing.T) {
	t.Setenv("LEAPUNIT_OUTPUT", "json")

	stdout, _, err := runCommand(t, NewFormatCommand(), "1500", "g")
	require.NoError(t, err)

	var result output.FormatOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, output.FormatOutput{Value: 1500, Unit: "g", Formatted: "1.5kg"}, result)

	_, _, err = runCommand(t, NewFormatCommand(), "x", "g")
	assert.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "json")

		stdout, _, err := runCommand(t, NewCompareCommand(), "--strict", "kg m s^-2", "N")
		require.NoError(t, err)

		var result output.CompareOutput
		require.NoError(t, json.Unmarshal([]byte(stdout), &result))
		assert.True(t, result.SameBaseUnits)
		assert.True(t, result.Equal)
		assert.Equal(t, 1.0, result.Factor)
		assert.Equal(t, "g m s^-2", result.LeftBaseUnits)
	})

	t.Run("compatible", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "text")

		stdout, _, err := runCommand(t, NewCompareCommand(), "km", "m")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Result: compatible")
		assert.Contains(t, stdout, "Factor: 1000")
	})

	t.Run("incompatible", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "markdown")

		stdout, _, err := runCommand(t, NewCompareCommand(), "m", "s")
		require.NoError(t, err)
		assert.Contains(t, stdout, "- **Result:** incompatible")
	})

	t.Run("strict mismatch fails", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "json")

		stdout, _, err := runCommand(t, NewCompareCommand(), "--strict", "km/h", "m/s")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not equal")
		// The comparison is still reported
		assert.Contains(t, stdout, `"same_base_units": true`)
	})
}

func TestUnitsCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "json")

		stdout, _, err := runCommand(t, NewUnitsCommand())
		require.NoError(t, err)

		var list output.UnitsOutput
		require.NoError(t, json.Unmarshal([]byte(stdout), &list))
		require.Equal(t, 2, list.Total)
		assert.Equal(t, output.RegisteredUnit{
			Symbol: "N", Category: "force", Definition: "kg m s^-2", BaseUnits: "g m s^-2",
		}, list.Units[0])
		assert.Equal(t, output.RegisteredUnit{
			Symbol: "h", Category: "time", Definition: "3600s", BaseUnits: "s",
		}, list.Units[1])
	})

	t.Run("category filter", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "json")

		stdout, _, err := runCommand(t, NewUnitsCommand(), "--category", "TIME")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"total": 1`)
		assert.Contains(t, stdout, `"symbol": "h"`)
	})

	t.Run("text table", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "text")

		stdout, _, err := runCommand(t, NewUnitsCommand())
		require.NoError(t, err)
		assert.Contains(t, stdout, "Units (2 total)")
		assert.Contains(t, stdout, "Force")
		assert.Contains(t, stdout, "Time")
		assert.Contains(t, stdout, "kg m s^-2")
	})

	t.Run("empty filter", func(t *testing.T) {
		t.Setenv("LEAPUNIT_OUTPUT", "markdown")

		stdout, _, err := runCommand(t, NewUnitsCommand(), "--category", "energy")
		require.NoError(t, err)
		assert.Contains(t, stdout, "# Units (0 total)")
		assert.Contains(t, stdout, "No units registered.")
	})
}

func TestUnknownOutputMode(t *testing.T) {
	t.Setenv("LEAPUNIT_OUTPUT", "html")

	_, _, err := runCommand(t, NewUnitsCommand())
	var modeErr *output.UnknownOutputModeError
	require.ErrorAs(t, err, &modeErr)
}

func newTestSession(t *testing.T) (*replSession, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	return &replSession{
		cmdCtx: &CommandContext{
			Cfg:      config.Default(),
			Logger:   config.GetLogger(t.Context()),
			Registry: unit.DefaultRegistry(),
		},
		out:    &out,
		errOut: &errOut,
	}, &out, &errOut
}

func TestREPLSession(t *testing.T) {
	tests := []struct {
		line    string
		wantOut string
		wantErr string
	}{
		{line: "N", wantOut: "N = kg m s^-2 [g m s^-2] scale 1000\n"},
		{line: "1500 g", wantOut: "1.5kg\n"},
		{line: "3 h -> s", wantOut: "10.8ks\n"},
		{line: "1 m -> s", wantErr: "different base units"},
		{line: "-> s", wantErr: "expected <value> <unit> -> <unit>"},
		{line: "m^", wantErr: "Error:"},
		{line: ".bogus", wantErr: "Unknown command: .bogus"},
		{line: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, out, errOut := newTestSession(t)

			quit := s.handle(tt.line)
			assert.False(t, quit)
			assert.Equal(t, tt.wantOut, out.String())
			if tt.wantErr == "" {
				assert.Empty(t, errOut.String())
			} else {
				assert.Contains(t, errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestREPLSession_DotCommands(t *testing.T) {
	s, out, _ := newTestSession(t)

	assert.False(t, s.handle(".help"))
	assert.Contains(t, out.String(), ".units")

	out.Reset()
	assert.False(t, s.handle(".units"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "N "))
	assert.True(t, strings.HasPrefix(lines[1], "h "))

	assert.True(t, s.handle(".quit"))
	assert.True(t, s.handle(".EXIT"))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.1", formatFloat(0.1, 0))
	assert.Equal(t, "3.14", formatFloat(3.14159, 3))
	assert.Equal(t, strconv.FormatFloat(1e21, 'g', -1, 64), formatFloat(1e21, -1))
}

func TestRenderUnitInfo(t *testing.T) {
	reg := unit.DefaultRegistry()
	u, err := reg.Parse("kN m")
	require.NoError(t, err)
	info := describeUnit("kN m", u)

	t.Run("markdown", func(t *testing.T) {
		tr := testutil.NewTestRendererMarkdown()
		renderUnitInfo(tr.Renderer, info)

		md := tr.Output()
		testutil.AssertValidMarkdown(t, md)
		assert.Contains(t, md, "- **Expanded:** Mg m s^-2 m")
		assert.Contains(t, md, "| kN | named | 1 | 1000 | g m s^-2 |")
		assert.Contains(t, md, "| m | base | 1 | 1 | m |")
	})

	t.Run("text", func(t *testing.T) {
		tr := testutil.NewTestRendererText()
		renderUnitInfo(tr.Renderer, info)

		text := tr.Output()
		testutil.AssertNoANSI(t, text)
		assert.Contains(t, text, "Combined scale: 1e+06")
		assert.Contains(t, text, "│ kN")
	})
}
