package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vinculum/internal/driver"
	"vinculum/internal/version"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vinculum <number|numeral>",
		Short: "Convert between integers and vinculum Roman numerals",
		Long: `vinculum converts an unsigned integer to a Roman numeral in vinculum
notation, or a numeral back to its integer. An argument made only of decimal
digits is encoded; anything else is decoded.`,
		Version:            version.Version,
		Args:               cobra.ExactArgs(1),
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  setupSession,
		PersistentPostRunE: finishSession,
		RunE:               runAuto,
	}

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newExplainCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newVersionCmd())

	root.PersistentFlags().String("config", "", "path to vinculum.toml (default: search upwards from the working directory)")
	root.PersistentFlags().String("zero", "reject", "zero policy (reject|empty)")
	root.PersistentFlags().String("format", "pretty", "output format (pretty|json|yaml|toml|msgpack)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		abortSession(os.Stderr)
		os.Exit(1)
	}
}

func runAuto(cmd *cobra.Command, args []string) error {
	s := currentSession()
	var res driver.Result
	if err := s.measure("convert", func() error {
		res = driver.Convert(cmd.Context(), s.codec, args[0])
		return res.Err
	}); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Output())
	return err
}

var errorColor = color.New(color.FgRed, color.Bold)

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("error:"), err)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
