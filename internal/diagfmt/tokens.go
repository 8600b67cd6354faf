package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"clex/internal/token"
)

const defaultMaxLexeme = 15

// firstDataRow is the StyleFunc row index of the first body row.
const firstDataRow = table.HeaderRow + 1

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func kindStyle(k token.Kind) lipgloss.Style {
	switch {
	case k.IsKeyword():
		return cellStyle.Foreground(lipgloss.Color("5"))
	case k == token.Ident:
		return cellStyle.Foreground(lipgloss.Color("6"))
	case k.IsLiteral():
		return cellStyle.Foreground(lipgloss.Color("3"))
	default:
		return cellStyle
	}
}

func newTable(opts TableOpts, headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	if opts.Color {
		t = t.BorderStyle(borderStyle)
	}
	return t
}

// truncateLexeme режет лексему по ширине в ячейках терминала, как печать
// исходной программы: value[:12] + "..." для длинных.
func truncateLexeme(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = defaultMaxLexeme
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// TokenTable renders tokens as a boxed table: #, code, lexeme, attribute, position.
func TokenTable(w io.Writer, tokens []token.Token, opts TableOpts) error {
	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(int(tok.Kind.Code())),
			tok.Kind.String(),
			truncateLexeme(tok.Text, opts.MaxLexeme),
			tok.Attr.String(),
			fmt.Sprintf("(%d,%d)", tok.Pos.Line, tok.Pos.Col),
		})
	}

	t := newTable(opts, "#", "CODE", "KIND", "LEXEME", "ATTR", "POS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if opts.Color && col == 2 {
				if idx := row - firstDataRow; idx >= 0 && idx < len(tokens) {
					return kindStyle(tokens[idx].Kind)
				}
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// SymbolTables renders the identifier and constant tables side by side.
func SymbolTables(w io.Writer, identifiers, constants []string, opts TableOpts) error {
	ids := symbolTable(opts, "SYM", "IDENTIFIER", identifiers)
	consts := symbolTable(opts, "CONST", "CONSTANT", constants)
	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, ids, "  ", consts))
	return err
}

func symbolTable(opts TableOpts, idxHeader, header string, entries []string) string {
	rows := make([][]string, 0, max(len(entries), 1))
	for i, e := range entries {
		rows = append(rows, []string{strconv.Itoa(i), truncateLexeme(e, opts.MaxLexeme)})
	}
	if len(entries) == 0 {
		rows = append(rows, []string{"", "(empty)"})
	}
	return newTable(opts, idxHeader, header).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}
