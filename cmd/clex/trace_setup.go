package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"clex/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context. The tracer is closed by closeTracing.
func setupTracing(cmd *cobra.Command) error {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if level == trace.LevelOff && traceOutput == "" {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return nil
	}
	// --trace без уровня - разумный минимум
	if level == trace.LevelOff {
		level = trace.LevelPhase
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	span := trace.Begin(tracer, trace.ScopeDriver, "clex "+cmd.Name(), 0)
	ctx = trace.WithSpan(trace.WithTracer(ctx, tracer), span)
	cmd.SetContext(context.WithValue(ctx, rootSpanKey{}, span))
	return nil
}

type rootSpanKey struct{}

// closeTracing ends the command span and closes the tracer. Safe to call
// more than once.
func closeTracing(cmd *cobra.Command) {
	ctx := cmd.Context()
	tracer := trace.FromContext(ctx)
	if tracer == trace.Nop {
		return
	}
	if span, ok := ctx.Value(rootSpanKey{}).(*trace.Span); ok {
		span.End("")
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
	}
	cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
}
