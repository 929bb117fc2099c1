package main

import (
	"github.com/spf13/cobra"

	"vinculum/internal/render"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the tier glyph table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := currentSession()
			symbols, err := cmd.Flags().GetBool("symbols")
			if err != nil {
				return err
			}
			if symbols {
				return render.Symbols(cmd.OutOrStdout(), render.SymbolRows(), s.format, s.renderOptions())
			}
			rows, err := render.TierRows()
			if err != nil {
				return err
			}
			return render.Tiers(cmd.OutOrStdout(), rows, s.format, s.renderOptions())
		},
	}
	cmd.Flags().Bool("symbols", false, "list every glyph with its value instead of the tier triples")
	return cmd
}
