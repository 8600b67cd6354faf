package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"clex/internal/version"
)

// errLexical is returned when some input had lexical errors. The diagnostics
// are already printed, so cobra must stay silent.
var errLexical = errors.New("lexical errors found")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clex",
		Short: "Lexical analyzer for a small C-like language",
		Long: `clex splits C-like source text into classified tokens, builds the
identifier and constant tables and reports every lexical error it finds.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupTracing(cmd); err != nil {
				return err
			}
			if err := setupProfiling(cmd); err != nil {
				closeTracing(cmd)
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) { finishCommand(cmd) },
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per file (0 = all)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this path")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this path on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to this path")

	return rootCmd
}

// main builds the command tree and executes it. Any error, lexical errors
// included, exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
