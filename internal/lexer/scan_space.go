package lexer

import (
	"unicode"

	"quill/internal/syntax"
	"quill/internal/value"
)

// Вся серия пробельных символов (включая переводы строк) одним токеном.
func (lx *Lexer) scanWhitespace() syntax.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpWhile(unicode.IsSpace)
	return lx.emit(syntax.Whitespace, start, value.Null())
}
