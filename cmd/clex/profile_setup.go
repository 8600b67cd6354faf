package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"clex/internal/prof"
)

type profSessionKey struct{}

// setupProfiling starts the profilers requested by the persistent flags and
// stores the session in the command context.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	var cfg prof.Config
	var err error
	if cfg.CPUProfile, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.MemProfile, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.RuntimeTrace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}

	session, err := prof.Start(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, profSessionKey{}, session))
	return nil
}

func stopProfiling(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		return
	}
	session, ok := ctx.Value(profSessionKey{}).(*prof.Session)
	if !ok {
		return
	}
	if err := session.Stop(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
	}
}

// finishCommand stops profiling and tracing. RunE paths that return an error
// skip PersistentPostRun, so they defer it themselves.
func finishCommand(cmd *cobra.Command) {
	stopProfiling(cmd)
	closeTracing(cmd)
}
