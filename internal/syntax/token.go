package syntax

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"quill/internal/source"
	"quill/internal/value"
)

// Token is a classified, positioned slice of source text and the leaf of
// every syntax tree. Text is exactly the consumed characters, so
// Text == source[Position : Position+len(chars(Text))].
type Token struct {
	kind     Kind
	position uint32
	text     string
	length   uint32 // в символах
	value    value.Value
}

// NewToken builds a token. It is used by the lexer and by tests that build
// trees by hand.
func NewToken(kind Kind, position uint32, text string, val value.Value) Token {
	n, err := safecast.Conv[uint32](utf8.RuneCountInString(text))
	if err != nil {
		panic(fmt.Errorf("token length overflow: %w", err))
	}
	return Token{kind: kind, position: position, text: text, length: n, value: val}
}

func (t Token) Kind() Kind { return t.kind }

// Position is the character offset of the first character of the token.
func (t Token) Position() uint32 { return t.position }

func (t Token) Text() string { return t.text }

// Value is Null for every kind except Number.
func (t Token) Value() value.Value { return t.value }

// Children of a token are always empty.
func (t Token) Children() []Node { return nil }

// Len returns the token length in characters.
func (t Token) Len() uint32 { return t.length }

// Span covers the characters of the token.
func (t Token) Span() source.Span {
	return source.NewSpan(t.position, t.Len())
}

func (t Token) String() string {
	if t.value.IsNull() {
		return fmt.Sprintf("%s %q @%d", t.kind, t.text, t.position)
	}
	return fmt.Sprintf("%s %q @%d = %s", t.kind, t.text, t.position, t.value)
}
