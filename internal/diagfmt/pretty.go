package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"clex/internal/diag"
	"clex/internal/source"
)

type palette struct {
	err, warn   *color.Color
	code, loc   *color.Color
	text, caret *color.Color
	gutter      *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		code:   color.New(color.Bold),
		loc:    color.New(color.FgBlue),
		text:   color.New(color.FgMagenta),
		caret:  color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.code, p.loc, p.text, p.caret, p.gutter} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevWarning:
		return p.warn
	default:
		return p.err
	}
}

// Pretty форматирует диагностики в человекочитаемый вид, в порядке bag.Items().
// Для каждой печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <title> '<text>' (<message>)
//
// и, если включено ShowSource, строку исходника с ^^^ под конструкцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)

	for _, d := range bag.Items() {
		var file *source.File
		if fs != nil && int(d.Primary.File) < fs.Len() {
			file = fs.Get(d.Primary.File)
		}
		prettyOne(w, p, d, file, opts)
	}

	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... and %d more diagnostic(s) not shown\n", n)
	}
}

func prettyOne(w io.Writer, p palette, d diag.Diagnostic, file *source.File, opts PrettyOpts) {
	path := displayPath(file, opts.PathMode, opts.BaseDir)
	if path == "" {
		path = "<input>"
	}

	fmt.Fprintf(w, "%s: %s %s: %s",
		p.loc.Sprintf("%s:%d:%d", path, d.Pos.Line, d.Pos.Col),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Code.Title(),
	)
	if d.Text != "" {
		fmt.Fprintf(w, " %s", p.text.Sprintf("'%s'", d.Text))
	}
	if d.Message != "" {
		fmt.Fprintf(w, " (%s)", d.Message)
	}
	fmt.Fprintln(w)

	if opts.ShowSource && file != nil {
		printSourceLine(w, p, d, file)
	}
}

func printSourceLine(w io.Writer, p palette, d diag.Diagnostic, file *source.File) {
	line := file.GetLine(d.Pos.Line)
	if line == "" && d.Pos.Line > 1 {
		return
	}
	num := fmt.Sprintf("%d", d.Pos.Line)
	pad := strings.Repeat(" ", len(num))

	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line)
	fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"), caretIndent(line, d.Pos.Col), p.caret.Sprint(caretMarker(d.Text)))
}

// caretIndent повторяет табы из строки, остальное заменяет пробелами по ширине.
func caretIndent(line string, col uint32) string {
	var sb strings.Builder
	n := uint32(1)
	for _, r := range line {
		if n >= col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		n++
	}
	return sb.String()
}

func caretMarker(text string) string {
	first, _, _ := strings.Cut(text, "\n")
	width := runewidth.StringWidth(first)
	if width < 1 {
		width = 1
	}
	return strings.Repeat("^", width)
}
