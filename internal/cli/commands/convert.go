// Package commands implements the subcommands of the bases CLI.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/capitalone/bases"
	"github.com/capitalone/bases/internal/cli/basespec"
	"github.com/capitalone/bases/internal/cli/config"
	"github.com/spf13/cobra"
)

// convertResult is the JSON form of a conversion.
type convertResult struct {
	Input  string   `json:"input"`
	From   int      `json:"from_radix"`
	To     int      `json:"to_radix"`
	Value  string   `json:"value"`
	Result string   `json:"result"`
	Digits []string `json:"digits"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var (
		array bool
		hex   bool
	)

	cmd := &cobra.Command{
		Use:   "convert <digits>...",
		Short: "Convert a number from one base to another",
		Long: `Read digits in the source base (--from) and print them in the target base (--to).

Several arguments are joined with spaces, which makes every argument one
multi-character digit. A single argument without spaces has one digit per
character.

Examples:
  bases convert --from 2 --to 16 1010
  bases convert --from "foo,bar" --to 10 bar foo
  bases convert --hex --to 2 0xFF`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.GetConfig(ctx)
			logger := config.GetLogger(ctx)

			r, err := basespec.NewResolver(cfg.Bases)
			if err != nil {
				return err
			}
			to, err := r.Parse(cfg.To)
			if err != nil {
				return fmt.Errorf("target base: %w", err)
			}

			input := strings.Join(args, " ")
			n := bases.FromString(input)
			if hex {
				logger.Debug("reading hexadecimal input", "input", input)
				_, err = n.InHex()
			} else {
				var from bases.Base
				from, err = r.Parse(cfg.From)
				if err != nil {
					return fmt.Errorf("source base: %w", err)
				}
				logger.Debug("reading input", "input", input, "from_radix", from.Radix())
				_, err = n.InBase(from)
			}
			if err != nil {
				return err
			}

			digits, err := n.ToDigits(to)
			if err != nil {
				return err
			}
			logger.Debug("converted", "value", n.String(), "to_radix", to.Radix(), "digits", len(digits))

			w := cmd.OutOrStdout()
			if cfg.Output == config.OutputJSON {
				src, _ := n.SourceBase()
				return writeJSON(w, convertResult{
					Input:  input,
					From:   src.Radix(),
					To:     to.Radix(),
					Value:  n.String(),
					Result: strings.Join(digits, cfg.Separator),
					Digits: digits,
				})
			}

			if array {
				for _, d := range digits {
					_, _ = fmt.Fprintln(w, d)
				}
				return nil
			}
			_, _ = fmt.Fprintln(w, strings.Join(digits, cfg.Separator))
			return nil
		},
	}

	cmd.Flags().BoolVar(&array, "array", false, "Print one digit per line")
	cmd.Flags().BoolVar(&hex, "hex", false, "Read the input as case-insensitive hexadecimal, ignoring --from")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
