package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clex/internal/diag"
	"clex/internal/lexer"
	"clex/internal/source"
	"clex/internal/token"
)

type testReporter struct {
	items []diag.Diagnostic
}

func (r *testReporter) Report(d diag.Diagnostic) {
	r.items = append(r.items, d)
}

func makeTestLexer(src string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.c", []byte(src)))
	rep := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: rep}), rep
}

func kindsOf(res lexer.Result) []token.Kind {
	out := make([]token.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func textsOf(res lexer.Result) []string {
	out := make([]string, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		out = append(out, tok.Text)
	}
	return out
}

func codesOf(res lexer.Result) []diag.Code {
	out := make([]diag.Code, 0, len(res.Errors))
	for _, d := range res.Errors {
		out = append(out, d.Code)
	}
	return out
}

func expectTokens(t *testing.T, src string, kinds []token.Kind, texts []string) lexer.Result {
	t.Helper()
	res := lexer.TokenizeString(src)
	require.Empty(t, res.Errors, "unexpected errors for %q:\n%s", src, diag.FormatShortDiagnostics(res.Errors))
	require.Equal(t, kinds, kindsOf(res), "kinds for %q", src)
	if texts != nil {
		require.Equal(t, texts, textsOf(res), "texts for %q", src)
	}
	return res
}

func expectSingleError(t *testing.T, src string, code diag.Code, text string) lexer.Result {
	t.Helper()
	res := lexer.TokenizeString(src)
	require.Len(t, res.Errors, 1, "errors for %q:\n%s", src, diag.FormatShortDiagnostics(res.Errors))
	assert.Equal(t, code, res.Errors[0].Code, "code for %q", src)
	assert.Equal(t, text, res.Errors[0].Text, "text for %q", src)
	return res
}

func TestShiftAssignIsOneToken(t *testing.T) {
	expectTokens(t, "a>>=b",
		[]token.Kind{token.Ident, token.ShrAssign, token.Ident},
		[]string{"a", ">>=", "b"})
}

func TestIdentifierTableDeduplicates(t *testing.T) {
	res := expectTokens(t, "x = x + 1;",
		[]token.Kind{token.Ident, token.Assign, token.Ident, token.Plus, token.IntLit, token.Semicolon},
		[]string{"x", "=", "x", "+", "1", ";"})

	assert.Equal(t, []string{"x"}, res.Identifiers)
	assert.Equal(t, []string{"1"}, res.Constants)
	assert.Equal(t, token.SymAttr(0), res.Tokens[0].Attr)
	assert.Equal(t, token.SymAttr(0), res.Tokens[2].Attr)
	assert.Equal(t, token.ConstAttr(0), res.Tokens[4].Attr)
	assert.True(t, res.Tokens[1].Attr.IsNone())
}

func TestTokenString(t *testing.T) {
	res := expectTokens(t, "x = 1;",
		[]token.Kind{token.Ident, token.Assign, token.IntLit, token.Semicolon}, nil)
	got := make([]string, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		got = append(got, tok.String())
	}
	assert.Equal(t, []string{"(50, 'x', SYM:0)", "(65, '=', -)", "(51, '1', CONST:0)", "(136, ';', -)"}, got)
}

func TestNumberClassification(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"0", token.IntLit},
		{"3.14", token.FloatLit},
		{".5", token.FloatLit},
		{"1.", token.FloatLit},
		{"0.5", token.FloatLit},
		{"1e10", token.FloatLit},
		{"1.5E-3", token.FloatLit},
		{"2e+7", token.FloatLit},
		{"0x1A", token.HexLit},
		{"0X1f", token.HexLit},
		{"0x1e", token.HexLit},
		{"017", token.OctLit},
		{"00", token.OctLit},
		{"07.5", token.FloatLit},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			res := expectTokens(t, tc.src, []token.Kind{tc.kind}, []string{tc.src})
			assert.Equal(t, []string{tc.src}, res.Constants)
		})
	}
}

func TestLeadingZerosAreNotReported(t *testing.T) {
	expectTokens(t, "00 007 0",
		[]token.Kind{token.OctLit, token.OctLit, token.IntLit}, nil)
}

func TestMalformedNumbers(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
		text string
		msg  string
	}{
		{"089", diag.LexIllegalOctal, "089", "octal literal cannot contain 8 or 9"},
		{"0789", diag.LexIllegalOctal, "0789", "octal literal cannot contain 8 or 9"},
		{"0x", diag.LexIllegalHex, "0x", "missing hex digits"},
		{"0xZZ", diag.LexIllegalHex, "0xZZ", "contains illegal characters"},
		{"0x1Fg", diag.LexIllegalNumber, "0x1Fg", "letter directly following a number"},
		{"1.2.3", diag.LexIllegalFloat, "1.2.3", "multiple decimal points"},
		{"1e", diag.LexIllegalFloat, "1e", "missing exponent digits"},
		{"1e+", diag.LexIllegalFloat, "1e+", "missing exponent digits"},
		{"1.5abc", diag.LexIllegalNumber, "1.5abc", "letter directly following a number"},
		{"1e5x", diag.LexIllegalNumber, "1e5x", "letter directly following a number"},
		{"017e5", diag.LexIllegalNumber, "017e5", ""},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			res := expectSingleError(t, tc.src, tc.code, tc.text)
			assert.Empty(t, res.Tokens)
			assert.Equal(t, source.LineCol{Line: 1, Col: 1}, res.Errors[0].Pos)
			assert.Empty(t, res.Constants)
			assert.Equal(t, tc.msg, res.Errors[0].Message)
			assert.Equal(t, source.LineCol{Line: 1, Col: 1}, res.Errors[0].Pos)
		})
	}
}

func TestMalformedNumberRecovery(t *testing.T) {
	res := lexer.TokenizeString("0xZZ; 1e+;")
	assert.Equal(t, []diag.Code{diag.LexIllegalHex, diag.LexIllegalFloat}, codesOf(res))
	assert.Equal(t, []token.Kind{token.Semicolon, token.Semicolon}, kindsOf(res))
}

func TestDigitLedIdentifier(t *testing.T) {
	res := expectSingleError(t, "1abc;", diag.LexIllegalIdent, "1abc")
	assert.Equal(t, source.LineCol{Line: 1, Col: 1}, res.Errors[0].Pos)
	assert.Equal(t, []token.Kind{token.Semicolon}, kindsOf(res))
	assert.Equal(t, source.LineCol{Line: 1, Col: 5}, res.Tokens[0].Pos)
	assert.Empty(t, res.Identifiers)

	expectSingleError(t, "017a", diag.LexIllegalIdent, "017a")
	expectSingleError(t, "12_x", diag.LexIllegalIdent, "12_x")
	expectSingleError(t, "10x", diag.LexIllegalIdent, "10x")

	// 'e' с буквой следом - не экспонента
	res = expectSingleError(t, "1ebc;", diag.LexIllegalIdent, "1ebc")
	assert.Equal(t, []token.Kind{token.Semicolon}, kindsOf(res))
	expectSingleError(t, "2E_x", diag.LexIllegalIdent, "2E_x")
	expectSingleError(t, "1e;", diag.LexIllegalFloat, "1e")
	expectTokens(t, "1e5", []token.Kind{token.FloatLit}, []string{"1e5"})
}

func TestDotDotIsNotAFraction(t *testing.T) {
	expectTokens(t, "1..2",
		[]token.Kind{token.IntLit, token.Dot, token.FloatLit},
		[]string{"1", ".", ".2"})
	expectTokens(t, "07..",
		[]token.Kind{token.OctLit, token.Dot, token.Dot},
		[]string{"07", ".", "."})
}

func TestStringKeepsRawLexeme(t *testing.T) {
	res := expectTokens(t, `"a\nb"`, []token.Kind{token.StringLit}, []string{`"a\nb"`})
	assert.Equal(t, "a\nb", res.Tokens[0].Value)
	assert.Equal(t, []string{`"a\nb"`}, res.Constants)
}

func TestStringEscapes(t *testing.T) {
	res := expectTokens(t, `"\x41\102\t\"\\"`, []token.Kind{token.StringLit}, nil)
	assert.Equal(t, "AB\t\"\\", res.Tokens[0].Value)

	// \0 берётся из таблицы, octal начинается только с 1-7
	res = expectTokens(t, `"\012\0"`, []token.Kind{token.StringLit}, nil)
	assert.Equal(t, "\x0012\x00", res.Tokens[0].Value)

	res = expectTokens(t, `"\1234"`, []token.Kind{token.StringLit}, nil)
	assert.Equal(t, "S4", res.Tokens[0].Value)
}

func TestStringIllegalEscapeKeepsLiteral(t *testing.T) {
	res := expectSingleError(t, `x "a\qb"`, diag.LexIllegalEscape, `\q`)
	assert.Equal(t, source.LineCol{Line: 1, Col: 3}, res.Errors[0].Pos, "anchored at the opening quote")
	require.Equal(t, []token.Kind{token.Ident, token.StringLit}, kindsOf(res))
	assert.Equal(t, "aqb", res.Tokens[1].Value)

	res = expectSingleError(t, `"a\qb"`, diag.LexIllegalEscape, `\q`)
	require.Equal(t, []token.Kind{token.StringLit}, kindsOf(res))
	assert.Equal(t, "aqb", res.Tokens[0].Value)

	res = expectSingleError(t, `"\x"`, diag.LexIllegalEscape, `\x`)
	require.Equal(t, []token.Kind{token.StringLit}, kindsOf(res))
	assert.Equal(t, "", res.Tokens[0].Value)

	res = expectSingleError(t, `"\8"`, diag.LexIllegalEscape, `\8`)
	assert.Equal(t, "8", res.Tokens[0].Value)
}

func TestUnclosedString(t *testing.T) {
	res := expectSingleError(t, `"hello`, diag.LexUnclosedString, `"hello`)
	assert.Empty(t, res.Tokens)
	assert.Empty(t, res.Constants)

	res = expectSingleError(t, "\"ab\nx", diag.LexUnclosedString, `"ab`)
	assert.Equal(t, []token.Kind{token.Ident}, kindsOf(res))
	assert.Equal(t, source.LineCol{Line: 2, Col: 1}, res.Tokens[0].Pos)

	expectSingleError(t, `"abc\`, diag.LexUnclosedString, `"abc\`)
}

func TestCharLiterals(t *testing.T) {
	cases := []struct {
		src   string
		value string
	}{
		{`'a'`, "a"},
		{`'\n'`, "\n"},
		{`'\''`, "'"},
		{`'\x41'`, "A"},
		{`'\101'`, "A"},
		{`'\0'`, "\x00"},
		{"'\u00e9'", "\u00e9"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			res := expectTokens(t, tc.src, []token.Kind{token.CharLit}, []string{tc.src})
			assert.Equal(t, tc.value, res.Tokens[0].Value)
			assert.Equal(t, token.ConstAttr(0), res.Tokens[0].Attr)
		})
	}
}

func TestCharErrors(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
		text string
	}{
		{`''`, diag.LexEmptyChar, `''`},
		{`'ab'`, diag.LexMultiChar, `'ab'`},
		{`'a`, diag.LexUnclosedChar, `'a`},
		{`'`, diag.LexUnclosedChar, `'`},
		{`'\`, diag.LexUnclosedChar, `'\`},
		{`'\x'`, diag.LexIllegalEscape, `'\x`},
		{`'\012'`, diag.LexMultiChar, `'\012'`},
		{`'\08'`, diag.LexMultiChar, `'\08'`},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			res := expectSingleError(t, tc.src, tc.code, tc.text)
			assert.Empty(t, res.Tokens)
			assert.Equal(t, source.LineCol{Line: 1, Col: 1}, res.Errors[0].Pos)
		})
	}
}

func TestCharIllegalEscapeKeepsLiteral(t *testing.T) {
	res := expectSingleError(t, `'\q'`, diag.LexIllegalEscape, `\q`)
	assert.Equal(t, source.LineCol{Line: 1, Col: 1}, res.Errors[0].Pos)
	require.Equal(t, []token.Kind{token.CharLit}, kindsOf(res))
	assert.Equal(t, "q", res.Tokens[0].Value)
}

func TestUnclosedCharStopsAtNewline(t *testing.T) {
	res := expectSingleError(t, "'a\nb", diag.LexUnclosedChar, "'a")
	assert.Equal(t, []token.Kind{token.Ident}, kindsOf(res))
	assert.Equal(t, []string{"b"}, res.Identifiers)
}

func TestHashTerminatesScan(t *testing.T) {
	res := expectTokens(t, "x;#y;",
		[]token.Kind{token.Ident, token.Semicolon, token.Hash},
		[]string{"x", ";", "#"})
	assert.Equal(t, []string{"x"}, res.Identifiers)

	// ошибки после '#' тоже не сканируются
	res = lexer.TokenizeString("# @ 089")
	assert.Empty(t, res.Errors)
}

func TestMaximalMunch(t *testing.T) {
	expectTokens(t, "<<= << < <> -> -- - ! != ~",
		[]token.Kind{token.ShlAssign, token.Shl, token.Lt, token.LtGt, token.Arrow,
			token.MinusMinus, token.Minus, token.Bang, token.BangEq, token.Tilde}, nil)
	expectTokens(t, "a+++b",
		[]token.Kind{token.Ident, token.PlusPlus, token.Plus, token.Ident},
		[]string{"a", "++", "+", "b"})
	expectTokens(t, "x<<=y>>=z",
		[]token.Kind{token.Ident, token.ShlAssign, token.Ident, token.ShrAssign, token.Ident}, nil)
	expectTokens(t, "/ /= % %= && || & | ^= == >=",
		[]token.Kind{token.Slash, token.SlashAssign, token.Percent, token.PercentAssign,
			token.AndAnd, token.OrOr, token.Amp, token.Pipe, token.CaretAssign,
			token.EqEq, token.GtEq}, nil)
}

func TestDelimiters(t *testing.T) {
	expectTokens(t, "( ) [ ] { } ; , : .",
		[]token.Kind{token.LParen, token.RParen, token.LBracket, token.RBracket,
			token.LBrace, token.RBrace, token.Semicolon, token.Comma, token.Colon, token.Dot}, nil)
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	res := expectTokens(t, "WHILE While while",
		[]token.Kind{token.KwWhile, token.KwWhile, token.KwWhile},
		[]string{"WHILE", "While", "while"})
	assert.Empty(t, res.Identifiers)
	for _, tok := range res.Tokens {
		assert.True(t, tok.Attr.IsNone())
	}
}

func TestLongSIsNotAKeywordLetter(t *testing.T) {
	res := expectTokens(t, "\u017ftruct STRUCT", []token.Kind{token.Ident, token.KwStruct}, nil)
	assert.Equal(t, []string{"\u017ftruct"}, res.Identifiers)
}

func TestIllegalCharacters(t *testing.T) {
	res := lexer.TokenizeString("a @ b $")
	assert.Equal(t, []token.Kind{token.Ident, token.Ident}, kindsOf(res))
	require.Equal(t, []diag.Code{diag.LexIllegalChar, diag.LexIllegalChar}, codesOf(res))
	assert.Equal(t, "@", res.Errors[0].Text)
	assert.Equal(t, source.LineCol{Line: 1, Col: 3}, res.Errors[0].Pos)
	assert.Equal(t, "$", res.Errors[1].Text)
	assert.Equal(t, source.LineCol{Line: 1, Col: 7}, res.Errors[1].Pos)
}

func TestComments(t *testing.T) {
	res := expectTokens(t, "a // c\nb /* x\ny */ c",
		[]token.Kind{token.Ident, token.Ident, token.Ident},
		[]string{"a", "b", "c"})
	assert.Equal(t, source.LineCol{Line: 3, Col: 6}, res.Tokens[2].Pos)
	assert.Equal(t, []string{"a", "b", "c"}, res.Identifiers)
}

func TestUnclosedBlockComment(t *testing.T) {
	res := expectSingleError(t, "a /* never closed\n b c", diag.LexUnclosedBlock, "/*")
	assert.Equal(t, source.LineCol{Line: 1, Col: 3}, res.Errors[0].Pos)
	assert.Equal(t, []string{"a"}, textsOf(res))
}

func TestPositions(t *testing.T) {
	res := expectTokens(t, "int a;\n  b = 'c';",
		[]token.Kind{token.KwInt, token.Ident, token.Semicolon, token.Ident, token.Assign, token.CharLit, token.Semicolon}, nil)
	want := []source.LineCol{
		{Line: 1, Col: 1}, {Line: 1, Col: 5}, {Line: 1, Col: 6},
		{Line: 2, Col: 3}, {Line: 2, Col: 5}, {Line: 2, Col: 7}, {Line: 2, Col: 10},
	}
	for i, tok := range res.Tokens {
		assert.Equal(t, want[i], tok.Pos, "token %d %q", i, tok.Text)
	}

	res = expectTokens(t, "\t\r\n a", []token.Kind{token.Ident}, nil)
	assert.Equal(t, source.LineCol{Line: 2, Col: 2}, res.Tokens[0].Pos)
}

func TestUnicodeIdentifier(t *testing.T) {
	res := expectTokens(t, "caf\u00e9 = 1;",
		[]token.Kind{token.Ident, token.Assign, token.IntLit, token.Semicolon}, nil)
	assert.Equal(t, "caf\u00e9", res.Tokens[0].Text)
	assert.Equal(t, source.LineCol{Line: 1, Col: 6}, res.Tokens[1].Pos)

	// разложенная форма нормализуется в NFC
	res = expectTokens(t, "cafe\u0301", []token.Kind{token.Ident}, nil)
	assert.Equal(t, []string{"caf\u00e9"}, res.Identifiers)
}

func TestConstantTableDeduplicates(t *testing.T) {
	res := expectTokens(t, `1 1 01 0x1 0x1 "a" "a" 'a'`,
		[]token.Kind{token.IntLit, token.IntLit, token.OctLit, token.HexLit,
			token.HexLit, token.StringLit, token.StringLit, token.CharLit}, nil)
	assert.Equal(t, []string{"1", "01", "0x1", `"a"`, "'a'"}, res.Constants)
	attrs := make([]token.Attr, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		attrs = append(attrs, tok.Attr)
	}
	assert.Equal(t, []token.Attr{
		token.ConstAttr(0), token.ConstAttr(0), token.ConstAttr(1), token.ConstAttr(2),
		token.ConstAttr(2), token.ConstAttr(3), token.ConstAttr(3), token.ConstAttr(4),
	}, attrs)
}

func TestReporterSeesEveryError(t *testing.T) {
	lx, rep := makeTestLexer("@ 089 'ab' \"x")
	res := lx.Tokenize()
	require.Len(t, res.Errors, 4)
	assert.Equal(t, res.Errors, rep.items)
	assert.True(t, res.HasErrors())
	assert.Equal(t, []diag.Code{diag.LexIllegalChar, diag.LexIllegalOctal, diag.LexMultiChar, diag.LexUnclosedString}, codesOf(res))
}

func TestTokenizeIsIdempotent(t *testing.T) {
	lx, rep := makeTestLexer("int x = 0x; y")
	first := lx.Tokenize()
	second := lx.Tokenize()
	assert.Equal(t, first, second)
	assert.Len(t, rep.items, 1, "second call must not rescan")
}

func TestEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   \n\t", "// only", "/**/"} {
		res := lexer.TokenizeString(src)
		assert.Empty(t, res.Tokens, "%q", src)
		assert.Empty(t, res.Errors, "%q", src)
	}
}

// TestScanAlwaysTerminates гоняет все префиксы набора неприятных входов и
// проверяет, что токены идут по порядку и их текст совпадает со span.
func TestScanAlwaysTerminates(t *testing.T) {
	inputs := []string{
		`int main() { x = 0x1F + 017 - 3.14e-2; return 'a'; }`,
		`"a\x\q\7777" '\x' '\'' 1..2 .5. 0x 0xg 1e+ @$`,
		"/* a * / ** b\n*/ c // d\n'\\\n\"\\\n",
		"\u00e9\u0301 1\u00e9 0\u00e9 _1 __ 9_ \xff\xfe",
		`a->b<<=c>>=d<>e!=f&&g||h#`,
	}
	for _, in := range inputs {
		for i := 0; i <= len(in); i++ {
			src := in[:i]
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("p", []byte(src)))
			res := lexer.New(file, lexer.Options{}).Tokenize()

			var prevEnd uint32
			for _, tok := range res.Tokens {
				require.GreaterOrEqual(t, tok.Span.Start, prevEnd, "%q", src)
				require.Greater(t, tok.Span.End, tok.Span.Start, "%q", src)
				require.Equal(t, string(file.Content[tok.Span.Start:tok.Span.End]), tok.Text, "%q", src)
				prevEnd = tok.Span.End
			}
			require.LessOrEqual(t, len(res.Tokens)+len(res.Errors), len(file.Content)+1, "%q", src)
			for _, d := range res.Errors {
				require.True(t, d.Code.IsLexical(), "%q", src)
				require.NotEqual(t, diag.LexLeadingZero, d.Code, "%q", src)
			}
		}
	}
}

func TestErrorShortForm(t *testing.T) {
	res := lexer.TokenizeString("  089")
	require.Len(t, res.Errors, 1)
	got := res.Errors[0].Short()
	assert.True(t, strings.HasPrefix(got, "[1:3] "), got)
	assert.Contains(t, got, "'089'")
	assert.Contains(t, got, "(octal literal cannot contain 8 or 9)")
}
