package lexer

import (
	"strconv"
	"unicode"

	"quill/internal/diag"
	"quill/internal/syntax"
	"quill/internal/value"
)

// Максимальная серия десятичных цифр, значение как int64.
// При переполнении: диагностика LexBadNumber и значение 0, токен остаётся Number.
func (lx *Lexer) scanNumber() syntax.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpWhile(unicode.IsDigit)

	sp := lx.cursor.SpanFrom(start)
	text := lx.text.StringSpan(sp)
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		lx.report(diag.LexBadNumber, sp, "invalid i64: "+text)
		n = 0
	}
	return syntax.NewToken(syntax.Number, sp.Start, text, value.Number(n))
}
