package commands

import (
	"fmt"
	"strings"

	"github.com/capitalone/bases"
	"github.com/capitalone/bases/internal/cli/basespec"
	"github.com/capitalone/bases/internal/cli/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var defaultTargets = []string{"2", "8", "10", "16", "b62"}

type tableRow struct {
	Base   string `json:"base"`
	Radix  int    `json:"radix"`
	Result string `json:"result"`
}

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	var targets []string

	cmd := &cobra.Command{
		Use:   "table <digits>...",
		Short: "Show a number in several bases",
		Long: `Read digits in the source base (--from) and print a table of the
number rendered in every target base.

Examples:
  bases table 255
  bases table --from 2 -T 16 -T "a,b" 1010`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.GetConfig(ctx)
			logger := config.GetLogger(ctx)

			r, err := basespec.NewResolver(cfg.Bases)
			if err != nil {
				return err
			}
			from, err := r.Parse(cfg.From)
			if err != nil {
				return fmt.Errorf("source base: %w", err)
			}

			n, err := bases.FromString(strings.Join(args, " ")).InBase(from)
			if err != nil {
				return err
			}

			rows := make([]tableRow, 0, len(targets))
			for _, spec := range targets {
				to, err := r.Parse(spec)
				if err != nil {
					return fmt.Errorf("target base %q: %w", spec, err)
				}
				s, err := n.ToBase(to, bases.WithSeparator(cfg.Separator))
				if err != nil {
					return fmt.Errorf("target base %q: %w", spec, err)
				}
				rows = append(rows, tableRow{Base: spec, Radix: to.Radix(), Result: s})
			}
			logger.Debug("rendered table", "value", n.String(), "targets", len(rows))

			if cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Base", "Radix", "Result"})
			for _, row := range rows {
				t.AppendRow(table.Row{row.Base, row.Radix, row.Result})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&targets, "target", "T", defaultTargets, "Target base (repeatable)")

	return cmd
}
