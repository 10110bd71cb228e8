package lexer

import (
	"unicode"

	"quill/internal/syntax"
	"quill/internal/value"
)

// Максимальная серия букв; ключевое слово или Ident.
func (lx *Lexer) scanWord() syntax.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpWhile(unicode.IsLetter)
	sp := lx.cursor.SpanFrom(start)
	text := lx.text.StringSpan(sp)
	return syntax.NewToken(syntax.WordKind(text), sp.Start, text, value.Null())
}
