package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"clex/internal/diagfmt"
	"clex/internal/driver"
	"clex/internal/trace"
)

const (
	defaultInputFile  = "input.txt"
	defaultReportFile = "output.txt"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] [file...]",
		Short: "Tokenize C-like source files",
		Long: `Tokenize breaks source files into classified tokens and prints the token
list together with the identifier and constant tables. Without arguments it
reads input.txt from the current directory.`,
		RunE: runTokenize,
	}

	cmd.Flags().String("format", "table", "output format (table|json|msgpack|report)")
	cmd.Flags().StringP("output", "o", "", "save the text report to this path")
	cmd.Flags().Bool("save", false, "save the text report to the configured report path (default output.txt)")
	cmd.Flags().Bool("no-source", false, "do not echo the source text before the tables")
	cmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	cmd.Flags().String("ui", "auto", "progress UI for several files (auto|on|off)")
	cmd.Flags().Bool("cache", false, "reuse results from the disk cache")
	cmd.Flags().Bool("cache-clear", false, "drop every cached result before tokenizing")
	return cmd
}

type tokenizeSettings struct {
	format         string
	reportPath     string
	noSource       bool
	quiet          bool
	timings        bool
	useColor       bool
	useStderrColor bool
	ui             uiMode
	jobs           int
	maxDiagnostics int
	cache          bool
	cacheClear     bool
	cacheDir       string
}

// readTokenizeSettings merges clex.toml with the command line; flags win
// whenever they were set explicitly.
func readTokenizeSettings(cmd *cobra.Command) (tokenizeSettings, error) {
	cfg, _, err := resolveConfig()
	if err != nil {
		return tokenizeSettings{}, err
	}
	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	s := tokenizeSettings{
		format:         cfg.Output.Format,
		jobs:           cfg.Limits.Jobs,
		maxDiagnostics: cfg.Limits.MaxDiagnostics,
		cache:          cfg.Cache.Enabled,
		cacheDir:       cfg.Cache.Dir,
	}

	if flags.Changed("format") {
		if s.format, err = flags.GetString("format"); err != nil {
			return s, fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	s.format = strings.ToLower(strings.TrimSpace(s.format))
	if !oneOf(s.format, outputFormats) {
		return s, fmt.Errorf("unknown format %q (expected %s)", s.format, strings.Join(outputFormats, "|"))
	}

	output, err := flags.GetString("output")
	if err != nil {
		return s, fmt.Errorf("failed to get output flag: %w", err)
	}
	save, err := flags.GetBool("save")
	if err != nil {
		return s, fmt.Errorf("failed to get save flag: %w", err)
	}
	switch {
	case output != "":
		s.reportPath = output
	case save && cfg.Output.Report != "":
		s.reportPath = cfg.Output.Report
	case save:
		s.reportPath = defaultReportFile
	}

	if s.noSource, err = flags.GetBool("no-source"); err != nil {
		return s, fmt.Errorf("failed to get no-source flag: %w", err)
	}
	if flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return s, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("cache") {
		if s.cache, err = flags.GetBool("cache"); err != nil {
			return s, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	if s.cacheClear, err = flags.GetBool("cache-clear"); err != nil {
		return s, fmt.Errorf("failed to get cache-clear flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}

	if root.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
			return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}

	colorMode := cfg.Output.Color
	if root.Changed("color") {
		if colorMode, err = root.GetString("color"); err != nil {
			return s, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if s.useColor, err = colorEnabled(colorMode, os.Stdout); err != nil {
		return s, err
	}
	if s.useStderrColor, err = colorEnabled(colorMode, os.Stderr); err != nil {
		return s, err
	}
	return s, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	defer finishCommand(cmd)

	settings, err := readTokenizeSettings(cmd)
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		files = []string{defaultInputFile}
	}

	opts := driver.Options{MaxDiagnostics: settings.maxDiagnostics}
	if settings.cache || settings.cacheClear {
		cache, err := driver.OpenDiskCache("clex", settings.cacheDir)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if settings.cacheClear {
			if err := cache.DropAll(); err != nil {
				return err
			}
		}
		// --cache-clear без --cache только чистит, результаты не сохраняются
		if settings.cache {
			opts.Cache = cache
		}
	}

	ctx := cmd.Context()
	results := make([]driver.FileResult, 0, len(files))
	if len(files) == 1 {
		res, err := driver.Tokenize(ctx, files[0], opts)
		if err != nil {
			return err
		}
		results = append(results, driver.FileResult{Path: files[0], Result: res})
	} else {
		batch := driver.BatchOptions{Options: opts, Jobs: settings.jobs}
		if settings.format == "table" && !settings.quiet && shouldUseTUI(settings.ui) {
			results, err = runBatchWithUI(ctx, cmd.ErrOrStderr(), "Tokenizing", files, batch)
		} else {
			results, err = driver.TokenizeBatch(ctx, files, batch)
		}
		if err != nil {
			return err
		}
	}

	failed, err := renderResults(cmd, results, settings)
	if err != nil {
		return err
	}
	if failed {
		cmd.SilenceErrors = true
		return errLexical
	}
	return nil
}

// renderResults prints every result in the selected format, diagnostics to
// stderr, and saves the report when asked. It reports whether any file
// failed to load or had lexical errors.
func renderResults(cmd *cobra.Command, results []driver.FileResult, s tokenizeSettings) (bool, error) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	ctx := cmd.Context()
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePhase, "render", trace.ParentID(ctx))
	span.WithExtra("format", s.format)
	defer span.End("")

	failed := false
	ok := make([]*driver.TokenizeResult, 0, len(results))
	for _, fr := range results {
		if fr.Err != nil {
			failed = true
			fmt.Fprintf(errOut, "error: %v\n", fr.Err)
			continue
		}
		if fr.Result == nil {
			// не дошли до файла: контекст отменён
			failed = true
			continue
		}
		ok = append(ok, fr.Result)
		if fr.Result.HasErrors() {
			failed = true
		}
	}

	var err error
	switch s.format {
	case "table":
		err = renderTables(out, ok, s)
	case "json", "msgpack":
		outputs := make([]diagfmt.ResultOutput, len(ok))
		for i, res := range ok {
			outputs[i] = diagfmt.BuildResultOutput(res.File, res.Result, diagfmt.JSONOpts{})
		}
		if s.format == "json" {
			err = diagfmt.JSON(out, outputs...)
		} else {
			err = diagfmt.Msgpack(out, outputs...)
		}
	case "report":
		err = diagfmt.WriteReport(out, reportFiles(ok)...)
	}
	if err != nil {
		return failed, fmt.Errorf("failed to write %s output: %w", s.format, err)
	}

	for _, res := range ok {
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(errOut, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:      s.useStderrColor,
				ShowSource: true,
			})
		}
		if s.timings {
			if len(ok) > 1 {
				fmt.Fprintf(errOut, "%s ", res.File.Path)
			}
			fmt.Fprint(errOut, res.Timer.Summary())
		}
	}

	if s.reportPath != "" {
		if err := diagfmt.SaveReport(s.reportPath, reportFiles(ok)...); err != nil {
			return failed, err
		}
		if !s.quiet {
			fmt.Fprintf(errOut, "Result saved to %s\n", s.reportPath)
		}
	}
	return failed, nil
}

func renderTables(out io.Writer, results []*driver.TokenizeResult, s tokenizeSettings) error {
	tableOpts := diagfmt.TableOpts{Color: s.useColor}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if !s.noSource && !s.quiet {
			echoSource(out, res)
		}
		if err := diagfmt.TokenTable(out, res.Result.Tokens, tableOpts); err != nil {
			return err
		}
		if err := diagfmt.SymbolTables(out, res.Result.Identifiers, res.Result.Constants, tableOpts); err != nil {
			return err
		}
	}
	return nil
}

func echoSource(out io.Writer, res *driver.TokenizeResult) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(out, "Input file: %s\n%s\n", res.File.Path, rule)
	content := string(res.File.Content)
	fmt.Fprint(out, content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%s\n\n", rule)
}

func reportFiles(results []*driver.TokenizeResult) []diagfmt.ReportFile {
	files := make([]diagfmt.ReportFile, len(results))
	for i, res := range results {
		files[i] = diagfmt.ReportFile{Result: res.Result}
		// заголовок с путём нужен, только когда файлов несколько
		if len(results) > 1 {
			files[i].Path = res.File.Path
		}
	}
	return files
}
