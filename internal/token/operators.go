package token

// Operator sets grouped by length; the lexer tries longer groups first.
var (
	ops3 = map[string]Kind{
		"<<=": ShlAssign,
		">>=": ShrAssign,
	}
	ops2 = map[string]Kind{
		"++": PlusPlus, "--": MinusMinus,
		"+=": PlusAssign, "-=": MinusAssign, "*=": StarAssign, "/=": SlashAssign, "%=": PercentAssign,
		"&&": AndAnd, "||": OrOr,
		"<<": Shl, ">>": Shr,
		"&=": AmpAssign, "|=": PipeAssign, "^=": CaretAssign,
		"<=": LtEq, ">=": GtEq, "<>": LtGt, "==": EqEq, "!=": BangEq,
		"->": Arrow,
	}
	ops1 = map[byte]Kind{
		'+': Plus, '-': Minus, '*': Star, '/': Slash, '%': Percent, '=': Assign,
		'&': Amp, '|': Pipe, '^': Caret, '~': Tilde, '!': Bang, '<': Lt, '>': Gt,
	}
	delimiters = map[byte]Kind{
		'(': LParen, ')': RParen, '[': LBracket, ']': RBracket, '{': LBrace, '}': RBrace,
		';': Semicolon, '#': Hash, ',': Comma, ':': Colon, '.': Dot,
	}
)

// LookupOperator3 matches a three-character operator.
func LookupOperator3(s string) (Kind, bool) {
	k, ok := ops3[s]
	return k, ok
}

// LookupOperator2 matches a two-character operator.
func LookupOperator2(s string) (Kind, bool) {
	k, ok := ops2[s]
	return k, ok
}

// LookupOperator1 matches a single-character operator.
func LookupOperator1(b byte) (Kind, bool) {
	k, ok := ops1[b]
	return k, ok
}

// LookupDelimiter matches a delimiter character.
func LookupDelimiter(b byte) (Kind, bool) {
	k, ok := delimiters[b]
	return k, ok
}

// IsOperatorStart reports whether b can begin an operator.
func IsOperatorStart(b byte) bool {
	_, ok := ops1[b]
	return ok
}
