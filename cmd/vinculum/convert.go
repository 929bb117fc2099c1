package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vinculum/internal/driver"
	"vinculum/internal/render"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <number>...",
		Short: "Encode decimal integers as numerals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, driver.KindArabic, args)
		},
	}
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <numeral>...",
		Short: "Decode numerals to decimal integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, driver.KindNumeral, args)
		},
	}
	return cmd
}

func runConvert(cmd *cobra.Command, kind driver.Kind, args []string) error {
	s := currentSession()
	results := make([]driver.Result, 0, len(args))
	err := s.measure(cmd.Name(), func() error {
		for _, arg := range args {
			results = append(results, driver.ConvertAs(cmd.Context(), s.codec, kind, arg))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return emitResults(cmd, results)
}

// emitResults prints one output per line in pretty mode and a results document
// otherwise. The first failure becomes the command error.
func emitResults(cmd *cobra.Command, results []driver.Result) error {
	s := currentSession()
	out := cmd.OutOrStdout()
	if s.format != render.FormatPretty {
		if err := render.Results(out, results, s.format, s.renderOptions()); err != nil {
			return err
		}
		return firstError(results)
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := fmt.Fprintln(out, r.Output()); err != nil {
			return err
		}
	}
	return firstError(results)
}

func firstError(results []driver.Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
