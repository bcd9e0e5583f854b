// Command int64conv parses a 64-bit integer from one input form and prints
// every output form the int64be package supports.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	int64be "go.codycody31.dev/int64be/v1"
)

var rootCmd = &cobra.Command{
	Use:   "int64conv <value>",
	Short: "Convert a 64-bit integer between decimal, hex, and float forms",
	Long: `int64conv parses a signed 64-bit integer and prints its decimal,
octet, hex, float64, and JSON forms. The input form is selected with --in:

  dec  exact decimal numeral (default), e.g. -9223372036854775808
  hex  up to 16 hex digits taken as the literal bit pattern, e.g. 0xfffafffffffff700
  num  a float64, decomposed into 32-bit halves, e.g. 1e18`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := cmd.Flags().GetString("in")
		if err != nil {
			return fmt.Errorf("flag error: %w", err)
		}

		v, err := parseValue(form, args[0])
		if err != nil {
			return err
		}

		return printForms(cmd, v)
	},
}

func parseValue(form, text string) (int64be.Int64, error) {
	switch form {
	case "dec":
		return int64be.FromDecimalString(text)
	case "hex":
		return int64be.FromHex(text)
	case "num":
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return int64be.Int64{}, fmt.Errorf("invalid number %q: %w", text, err)
		}
		return int64be.FromNumber(f)
	default:
		return int64be.Int64{}, fmt.Errorf(`invalid input form %q: expected "dec", "hex", or "num"`, form)
	}
}

func printForms(cmd *cobra.Command, v int64be.Int64) error {
	out := cmd.OutOrStdout()

	precision := ""
	if math.IsInf(v.ToNumber(false), 0) {
		precision = " (imprecise)"
	}

	fmt.Fprintf(out, "decimal: %s\n", v.ToDecimalString())
	fmt.Fprintf(out, "octets:  %s\n", v.ToOctetString(" "))
	fmt.Fprintf(out, "hex:     0x%s\n", v.ToOctetString(""))
	fmt.Fprintf(out, "float64: %g%s\n", v.ToNumber(true), precision)

	j, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON form: %w", err)
	}
	fmt.Fprintf(out, "json:    %s\n", j)
	return nil
}

func init() {
	rootCmd.Flags().StringP("in", "i", "dec", `Input form. One of "dec", "hex", "num"`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
