package commands

import (
	"strings"

	"github.com/capitalone/bases/internal/cli/basespec"
	"github.com/capitalone/bases/internal/cli/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type listEntry struct {
	Name    string   `json:"name"`
	Radix   int      `json:"radix"`
	Custom  bool     `json:"custom"`
	Symbols []string `json:"symbols"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List named bases",
		Long:  `List the built-in named bases and the custom bases defined in the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())

			r, err := basespec.NewResolver(cfg.Bases)
			if err != nil {
				return err
			}

			var entries []listEntry
			for _, nb := range r.Names() {
				entries = append(entries, listEntry{
					Name:    nb.Name,
					Radix:   nb.Base.Radix(),
					Custom:  nb.Custom,
					Symbols: nb.Base.Symbols(),
				})
			}

			if cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Radix", "Source", "Symbols"})
			for _, e := range entries {
				source := "built-in"
				if e.Custom {
					source = "config"
				}
				t.AppendRow(table.Row{e.Name, e.Radix, source, strings.Join(e.Symbols, " ")})
			}
			t.Render()
			return nil
		},
	}
}
