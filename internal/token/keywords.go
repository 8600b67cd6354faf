package token

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var keywords = map[string]Kind{
	"if":       KwIf,
	"then":     KwThen,
	"else":     KwElse,
	"begin":    KwBegin,
	"end":      KwEnd,
	"int":      KwInt,
	"float":    KwFloat,
	"char":     KwChar,
	"while":    KwWhile,
	"do":       KwDo,
	"return":   KwReturn,
	"for":      KwFor,
	"void":     KwVoid,
	"break":    KwBreak,
	"continue": KwContinue,
	"switch":   KwSwitch,
	"case":     KwCase,
	"default":  KwDefault,
	"struct":   KwStruct,
	"const":    KwConst,
	"typedef":  KwTypedef,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Сравнение регистронезависимое: "While" и "WHILE" тоже KwWhile.
// Используется простое приведение к нижнему регистру, не case folding:
// "ſtruct" (U+017F) остаётся идентификатором.
func LookupKeyword(ident string) (Kind, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	// cases.Caser хранит состояние, поэтому новый на каждый вызов
	k, ok := keywords[cases.Lower(language.Und).String(ident)]
	return k, ok
}
