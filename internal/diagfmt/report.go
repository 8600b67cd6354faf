package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"clex/internal/diag"
	"clex/internal/lexer"
)

// ReportFile is one file's section of the text report.
type ReportFile struct {
	Path   string // пусто - заголовок файла не печатается
	Result lexer.Result
}

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

// WriteReport пишет текстовый отчёт: список токенов "(code, 'lexeme', attr)",
// таблицы идентификаторов и констант, список ошибок.
func WriteReport(w io.Writer, files ...ReportFile) error {
	bw := bufio.NewWriter(w)
	for i, f := range files {
		if i > 0 {
			bw.WriteString("\n")
		}
		writeReportFile(bw, f)
	}
	return bw.Flush()
}

func writeReportFile(w *bufio.Writer, f ReportFile) {
	fmt.Fprintln(w, heavyRule)
	if f.Path != "" {
		fmt.Fprintf(w, "Lexical analysis result: %s\n", f.Path)
	} else {
		fmt.Fprintln(w, "Lexical analysis result")
	}
	fmt.Fprintf(w, "%s\n\n", heavyRule)

	fmt.Fprintln(w, "Tokens")
	fmt.Fprintln(w, lightRule)
	for i, tok := range f.Result.Tokens {
		fmt.Fprintf(w, "%3d. %s\n", i+1, tok)
	}

	fmt.Fprintf(w, "\nIdentifier table: %s\n", listRepr(f.Result.Identifiers))
	fmt.Fprintf(w, "Constant table:   %s\n", listRepr(f.Result.Constants))

	if len(f.Result.Errors) > 0 {
		fmt.Fprintf(w, "\n%s\n", heavyRule)
		fmt.Fprintf(w, "Errors (%d):\n", len(f.Result.Errors))
		fmt.Fprintln(w, lightRule)
		w.WriteString(indentLines(diag.FormatShortDiagnostics(f.Result.Errors), "  "))
	}
}

// SaveReport writes the report to path, replacing the file.
func SaveReport(path string, files ...ReportFile) (err error) {
	// #nosec G304 -- path comes from the CLI or clex.toml
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save report: %w", cerr)
		}
	}()
	return WriteReport(f, files...)
}

// listRepr печатает таблицу как список: ['a', 'b'].
// Строка с ' внутри (и без ") берётся в двойные кавычки.
func listRepr(entries []string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = quoteEntry(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func quoteEntry(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var sb strings.Builder
	sb.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(q):
			sb.WriteByte('\\')
			sb.WriteByte(q)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

func indentLines(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(l)
	}
	return sb.String()
}
