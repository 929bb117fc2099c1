package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vinculum/internal/driver"
	"vinculum/internal/render"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Convert one input per line concurrently",
		Long: `batch reads inputs from a file, or from stdin when the argument is "-" or
missing, and converts each non-blank line. Results keep the input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBatch,
	}
	cmd.Flags().Int("jobs", 0, "number of concurrent workers (0 = GOMAXPROCS)")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	s := currentSession()
	jobs := s.jobs
	if cmd.Flags().Changed("jobs") {
		var err error
		if jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	var inputs []string
	if err := s.measure("read", func() error {
		var err error
		inputs, err = readInputs(cmd, args)
		return err
	}); err != nil {
		return err
	}

	var results []driver.Result
	if err := s.measure("convert", func() error {
		var err error
		results, err = driver.ConvertAll(cmd.Context(), s.codec, inputs, jobs)
		return err
	}); err != nil {
		return err
	}

	if err := render.Results(cmd.OutOrStdout(), results, s.format, s.renderOptions()); err != nil {
		return err
	}
	if n := driver.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d inputs failed", n, len(results))
	}
	return nil
}

func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open batch input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return scanLines(r)
}

// scanLines returns the trimmed non-blank lines of r.
func scanLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return out, nil
}
