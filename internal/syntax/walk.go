package syntax

import (
	"reflect"

	"quill/internal/source"
)

// IsNil reports whether n is absent: a nil interface or a typed nil pointer
// such as Expr((*BinaryExpr)(nil)).
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Walk visits n and its descendants in pre-order. When fn returns false the
// children of that node are skipped. Absent children (see IsNil) left by a
// recovering parser are ignored.
func Walk(n Node, fn func(Node) bool) {
	if IsNil(n) || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// Tokens returns the leaves under n in source order.
func Tokens(n Node) []Token {
	var out []Token
	Walk(n, func(c Node) bool {
		if tok, ok := c.(Token); ok {
			out = append(out, tok)
		}
		return true
	})
	return out
}

// SpanOf covers the first through the last token under n. It reports false
// for a subtree without tokens.
func SpanOf(n Node) (source.Span, bool) {
	toks := Tokens(n)
	if len(toks) == 0 {
		return source.Span{}, false
	}
	return toks[0].Span().Cover(toks[len(toks)-1].Span()), true
}
