package main

import (
	"github.com/spf13/cobra"

	"vinculum/internal/driver"
	"vinculum/internal/render"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <number|numeral>",
		Short: "Show the tier digits behind an encoding",
		Long: `explain breaks a value into its non-zero decimal digits and shows the
glyphs each tier contributes. A numeral argument is decoded first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := currentSession()
			res := driver.Convert(cmd.Context(), s.codec, args[0])
			if res.Err != nil {
				return res.Err
			}
			var steps []driver.Step
			if err := s.measure("explain", func() error {
				var err error
				steps, err = driver.Explain(res.Value)
				return err
			}); err != nil {
				return err
			}
			return render.Steps(cmd.OutOrStdout(), res.Value, steps, s.format, s.renderOptions())
		},
	}
	return cmd
}
