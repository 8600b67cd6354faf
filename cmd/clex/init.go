package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const sampleInput = `/* sample input for clex */
int main() {
    int x = 0x1F + 017;
    float y = 3.14e-2;
    char c = '\n';
    x <<= 2;
    printf("%d\n", x);
    return 0;
}
#
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter clex.toml",
		Long: `Init writes a starter clex.toml into dir (default: the current directory)
and a sample input.txt when the directory has none. The directory is created
when it does not exist.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	defer finishCommand(cmd)

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	configPath := filepath.Join(target, configFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", configPath)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	created := []string{configFileName}

	inputPath := filepath.Join(target, defaultInputFile)
	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(inputPath, []byte(sampleInput), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", inputPath, err)
		}
		created = append(created, defaultInputFile)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initialized clex in %s\n", target)
		for _, name := range created {
			fmt.Fprintf(out, "  created %s\n", name)
		}
	}
	return nil
}
