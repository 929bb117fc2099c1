package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vinculum/internal/ui"
)

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Convert interactively with a live preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("repl needs an interactive terminal; use batch for piped input")
			}
			s := currentSession()
			p := tea.NewProgram(ui.NewConverter(cmd.Context(), s.codec), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
	return cmd
}
