package lexer

import (
	"unicode/utf8"

	"clex/internal/diag"
	"clex/internal/source"
	"clex/internal/symtab"
	"clex/internal/token"
)

// Result is everything a scan produces. Slices are owned by the caller.
type Result struct {
	Tokens      []token.Token
	Errors      []diag.Diagnostic
	Identifiers []string // identifier table, index = SYM attribute
	Constants   []string // constant table, index = CONST attribute
}

// HasErrors reports whether any lexical error was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Lexer scans one source file. A Lexer is single-use and not safe for
// concurrent use; create a new one per file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	tokens []token.Token
	errs   *diag.Bag
	idents *symtab.Table
	consts *symtab.Table

	halted bool // встретили '#'
	result *Result
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		tokens: make([]token.Token, 0, len(file.Content)/4+1),
		errs:   diag.NewBag(0),
		idents: symtab.New(),
		consts: symtab.New(),
	}
}

// TokenizeString scans src as a virtual file named "input".
func TokenizeString(src string) Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("input", []byte(src)))
	return New(file, Options{}).Tokenize()
}

// Tokenize runs the scan to completion: end of input or a '#' delimiter.
// Lexical problems never stop the scan; they are returned in Result.Errors.
// Calling Tokenize again returns the same result without rescanning.
func (lx *Lexer) Tokenize() Result {
	if lx.result != nil {
		return *lx.result
	}

	for !lx.halted {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			break
		}
		lx.dispatch()
	}

	lx.result = &Result{
		Tokens:      lx.tokens,
		Errors:      lx.errs.Items(),
		Identifiers: lx.idents.Entries(),
		Constants:   lx.consts.Entries(),
	}
	return *lx.result
}

// dispatch выбирает сканер по текущему символу. Каждая ветка сдвигает курсор
// хотя бы на один символ.
func (lx *Lexer) dispatch() {
	r := lx.cursor.Peek()

	switch {
	case isIdentStartRune(r):
		lx.emit(lx.scanIdentOrKeyword())

	case isDec(r):
		if lx.digitLedIdent() {
			lx.scanIllegalIdent()
			return
		}
		lx.emit(lx.scanNumber())

	case lx.isNumberAfterDot():
		lx.emit(lx.scanNumber())

	case r == '\'':
		lx.emit(lx.scanChar())

	case r == '"':
		lx.emit(lx.scanString())

	case r < utf8.RuneSelf && token.IsOperatorStart(byte(r)):
		lx.emit(lx.scanOperator())

	case r < utf8.RuneSelf && isDelimiter(byte(r)):
		tok, ok := lx.scanDelimiter()
		lx.emit(tok, ok)
		if ok && tok.Kind == token.Hash {
			lx.halted = true
		}

	default:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.errLex(diag.LexIllegalChar, start, lx.cursor.TextFrom(start), "")
	}
}

func (lx *Lexer) emit(tok token.Token, ok bool) {
	if ok {
		lx.tokens = append(lx.tokens, tok)
	}
}

func (lx *Lexer) makeToken(kind token.Kind, start Mark, attr token.Attr) token.Token {
	return token.Token{
		Kind: kind,
		Text: lx.cursor.TextFrom(start),
		Attr: attr,
		Pos:  start.Pos(),
		Span: lx.cursor.SpanFrom(start),
	}
}

// literal interns the consumed text into the constant table and builds the token.
func (lx *Lexer) literal(kind token.Kind, start Mark) token.Token {
	text := lx.cursor.TextFrom(start)
	idx := lx.consts.Intern(text)
	return lx.makeToken(kind, start, token.ConstAttr(idx))
}
