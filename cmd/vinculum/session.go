package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vinculum/internal/config"
	"vinculum/internal/numeral"
	"vinculum/internal/observ"
	"vinculum/internal/render"
	"vinculum/internal/trace"
)

// session is the resolved configuration of one CLI invocation.
type session struct {
	cfg     config.Config
	codec   numeral.Codec
	format  render.Format
	color   bool
	jobs    int
	timer   *observ.Timer
	timings bool
	tracer  trace.Tracer
	span    *trace.Span
	cleanup func()
}

var sess *session

func currentSession() *session {
	if sess == nil {
		sess = &session{timer: observ.NewTimer(), tracer: trace.Nop, cleanup: func() {}}
	}
	return sess
}

func (s *session) measure(name string, fn func() error) error {
	return s.timer.Measure(name, fn)
}

func (s *session) renderOptions() render.Options {
	return render.Options{Color: s.color}
}

// setupSession merges vinculum.toml with explicitly set flags and starts
// tracing.
func setupSession(cmd *cobra.Command, _ []string) error {
	sess = nil
	s := currentSession()
	flags := cmd.Root().PersistentFlags()

	timings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	s.timings = timings

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if err := s.measure("config", func() error {
		cfg, err = config.Resolve(configPath, ".")
		return err
	}); err != nil {
		return err
	}
	for _, o := range []struct {
		flag string
		dst  *string
	}{
		{"zero", &cfg.Codec.Zero},
		{"format", &cfg.Output.Format},
		{"color", &cfg.Output.Color},
	} {
		if !flags.Changed(o.flag) {
			continue
		}
		if *o.dst, err = flags.GetString(o.flag); err != nil {
			return fmt.Errorf("failed to get %s flag: %w", o.flag, err)
		}
	}
	s.cfg = cfg
	s.jobs = cfg.Batch.Jobs

	zero, err := cfg.ZeroPolicy()
	if err != nil {
		return err
	}
	s.codec = numeral.Codec{Zero: zero}

	if s.format, err = render.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}
	if s.color, err = resolveColor(cfg.Output.Color, os.Stdout); err != nil {
		return err
	}
	color.NoColor = !s.color

	cleanup, err := setupTracing(cmd, s)
	if err != nil {
		return err
	}
	s.cleanup = cleanup
	return nil
}

func resolveColor(mode string, out *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(out), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

func finishSession(cmd *cobra.Command, _ []string) error {
	s := currentSession()
	s.span.End("")
	s.cleanup()
	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
	}
	return nil
}

// abortSession closes tracing after a failed command. A ring tracer dumps its
// recent events so the failure can be inspected.
func abortSession(w io.Writer) {
	s := currentSession()
	if r, ok := trace.Ring(s.tracer); ok {
		fmt.Fprintln(w, "recent trace events:")
		_ = r.Dump(w, trace.FormatText) //nolint:errcheck
	}
	s.span.End("failed")
	s.cleanup()
	if s.timings {
		fmt.Fprint(w, s.timer.Summary())
	}
}
