package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vinculum/internal/render"
	"vinculum/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool" yaml:"tool" toml:"tool" msgpack:"tool"`
	Version   string `json:"version" yaml:"version" toml:"version" msgpack:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty" toml:"git_commit,omitempty" msgpack:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty" toml:"build_date,omitempty" msgpack:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			full, err := cmd.Flags().GetBool("full")
			if err != nil {
				return err
			}
			s := currentSession()
			payload := collectVersion(full)
			if s.format != render.FormatPretty {
				return render.Document(cmd.OutOrStdout(), s.format, payload)
			}
			renderVersionPretty(cmd.OutOrStdout(), payload, full)
			return nil
		},
	}
	cmd.Flags().Bool("full", false, "include commit hash and build date")
	return cmd
}


func collectVersion(full bool) versionPayload {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	p := versionPayload{Tool: "vinculum", Version: v}
	if full {
		p.GitCommit = valueOrUnknown(strings.TrimSpace(version.GitCommit))
		p.BuildDate = valueOrUnknown(strings.TrimSpace(version.BuildDate))
	}
	return p
}

func renderVersionPretty(out io.Writer, p versionPayload, full bool) {
	fmt.Fprintf(out, "vinculum %s\n", version.Colored())
	if full {
		fmt.Fprintf(out, "commit: %s\n", p.GitCommit)
		fmt.Fprintf(out, "built:  %s\n", p.BuildDate)
	}
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
