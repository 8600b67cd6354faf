// Package testkit holds structural checks shared by lexer tests and fuzzing.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"clex/internal/lexer"
	"clex/internal/source"
	"clex/internal/token"
)

// CheckTokenInvariants runs the structural invariants on a scan result:
// 1) every token span is non-empty, inside the file and after the previous one
// 2) Text is exactly the source bytes under Span, Pos is the position of Span.Start
// 3) SYM/CONST attributes index an existing table entry equal to Text
// 4) both tables are free of duplicates
// 5) every diagnostic span is inside the file
func CheckTokenInvariants(file *source.File, res lexer.Result) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range res.Tokens {
		sp := tok.Span
		if sp.File != file.ID {
			return fmt.Errorf("token %d: span points to file %d, want %d", i, sp.File, file.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d %s: empty span %v", i, tok, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d %s: span end beyond content: %d > %d", i, tok, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d %s: overlaps previous token (start %d < %d)", i, tok, sp.Start, prevEnd)
		}
		prevEnd = sp.End

		if got := string(file.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		if want := file.Position(sp.Start); tok.Pos != want {
			return fmt.Errorf("token %d %s: pos %v, want %v", i, tok, tok.Pos, want)
		}

		if err := checkAttr(i, tok, res); err != nil {
			return err
		}
	}

	if err := checkUnique("identifier", res.Identifiers); err != nil {
		return err
	}
	if err := checkUnique("constant", res.Constants); err != nil {
		return err
	}

	for i, d := range res.Errors {
		if d.Primary.Start > d.Primary.End || d.Primary.End > lenContent {
			return fmt.Errorf("diagnostic %d %s: span %v outside content", i, d.Code.ID(), d.Primary)
		}
	}
	return nil
}

func checkAttr(i int, tok token.Token, res lexer.Result) error {
	var entries []string
	switch tok.Attr.Table {
	case token.TableNone:
		if tok.IsIdent() || tok.IsLiteral() {
			return fmt.Errorf("token %d %s: missing attribute", i, tok)
		}
		return nil
	case token.TableSym:
		entries = res.Identifiers
	case token.TableConst:
		entries = res.Constants
	}
	idx := tok.Attr.Index
	if idx < 0 || idx >= len(entries) {
		return fmt.Errorf("token %d %s: attribute index out of range (%d entries)", i, tok, len(entries))
	}
	if entries[idx] != tok.Text {
		return fmt.Errorf("token %d %s: table entry %q differs from text", i, tok, entries[idx])
	}
	return nil
}

func checkUnique(name string, entries []string) error {
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if j, ok := seen[e]; ok {
			return fmt.Errorf("%s table: %q at %d and %d", name, e, j, i)
		}
		seen[e] = i
	}
	return nil
}
