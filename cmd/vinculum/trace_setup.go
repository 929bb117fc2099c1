package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vinculum/internal/trace"
)

// setupTracing reads the trace flags, attaches a tracer to the command
// context and opens the command span. The returned cleanup closes the tracer.
func setupTracing(cmd *cobra.Command, s *session) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace alone means "trace at detail level".
	if level == trace.LevelOff && output != "" {
		level = trace.LevelDetail
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{Level: level, Mode: mode, OutputPath: output})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	s.tracer = tracer
	s.span = trace.Begin(tracer, trace.ScopeCommand, cmd.Name(), 0)

	ctx := trace.WithTracer(cmd.Context(), tracer)
	ctx = trace.WithParent(ctx, s.span.ID())
	cmd.SetContext(ctx)

	return func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to close tracer: %v\n", err)
		}
	}, nil
}
