package lexer

import (
	"fmt"

	"quill/internal/diag"
	"quill/internal/syntax"
	"quill/internal/value"
)

// Жадность: сначала 2-символьные операторы, затем 1-символьные.
// Неизвестный символ → BadToken длиной ровно в один символ.
func (lx *Lexer) scanOperatorOrPunct() syntax.Token {
	start := lx.cursor.Mark()
	emit := func(k syntax.Kind) syntax.Token {
		return lx.emit(k, start, value.Null())
	}

	switch {
	case lx.try2('&', '&'):
		return emit(syntax.AndAnd)
	case lx.try2('|', '|'):
		return emit(syntax.OrOr)
	case lx.try2('=', '='):
		return emit(syntax.EqEq)
	case lx.try2('!', '='):
		return emit(syntax.BangEq)
	case lx.try2('<', '='):
		return emit(syntax.LtEq)
	case lx.try2('>', '='):
		return emit(syntax.GtEq)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(syntax.Plus)
	case '-':
		return emit(syntax.Minus)
	case '*':
		return emit(syntax.Star)
	case '/':
		return emit(syntax.Slash)
	case '=':
		return emit(syntax.Assign)
	case '!':
		return emit(syntax.Bang)
	case '<':
		return emit(syntax.Lt)
	case '>':
		return emit(syntax.Gt)
	case '&':
		return emit(syntax.Amp)
	case '|':
		return emit(syntax.Pipe)
	case '^':
		return emit(syntax.Caret)
	case '~':
		return emit(syntax.Tilde)
	case '(':
		return emit(syntax.LParen)
	case ')':
		return emit(syntax.RParen)
	case '{':
		return emit(syntax.LBrace)
	case '}':
		return emit(syntax.RBrace)
	default:
		tok := emit(syntax.BadToken)
		lx.report(diag.LexUnknownChar, tok.Span(), fmt.Sprintf("bad character input: '%c'", ch))
		return tok
	}
}

// try2 consumes a and b when both are next in the input.
func (lx *Lexer) try2(a, b rune) bool {
	r0, r1, ok := lx.cursor.Peek2()
	if !ok || r0 != a || r1 != b {
		return false
	}
	lx.cursor.Off += 2
	return true
}
