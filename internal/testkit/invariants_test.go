package testkit

import (
	"math/rand"
	"testing"

	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/value"
)

func TestLexerStreamsSatisfyInvariants(t *testing.T) {
	inputs := []string{
		"",
		"12+3",
		"let x = 10\r\nwhile x != 0 { x = x - 1 }",
		"$ @ 99999999999999999999 \x00",
		"αβγ ١٢٣ && || == != <= >=",
	}
	for _, in := range inputs {
		text := source.FromString(in)
		tokens, _ := lexer.Tokenize(text, lexer.Options{})
		if err := CheckTokenStream(text, tokens); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestCheckTokenStreamCatchesGaps(t *testing.T) {
	text := source.FromString("ab")
	tokens := []syntax.Token{
		syntax.NewToken(syntax.Ident, 0, "a", value.Null()),
		syntax.NewToken(syntax.EOF, 2, "", value.Null()),
	}
	if err := CheckTokenStream(text, tokens); err == nil {
		t.Fatal("expected gap to be reported")
	}
}

func TestCheckTokenStreamCatchesStrayValue(t *testing.T) {
	text := source.FromString("a")
	tokens := []syntax.Token{
		syntax.NewToken(syntax.Ident, 0, "a", value.Number(1)),
		syntax.NewToken(syntax.EOF, 1, "", value.Null()),
	}
	if err := CheckTokenStream(text, tokens); err == nil {
		t.Fatal("expected value on identifier to be reported")
	}
}

func TestLineTablesAndIndex(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := range 500 {
		src := RandomLineSource(r, 24)
		text := source.FromString(src)
		if err := CheckLineTable(text); err != nil {
			t.Fatalf("case %d %q: %v", i, src, err)
		}
		if err := CheckLineIndex(text); err != nil {
			t.Fatalf("case %d %q: %v", i, src, err)
		}
	}
}

func TestLineTableScenario(t *testing.T) {
	text := source.FromString(".\r\n\r\n")
	if err := CheckLineTable(text); err != nil {
		t.Fatal(err)
	}
	if got := LinearLineIndex(text, 4); got != 1 {
		t.Errorf("LinearLineIndex(4) = %d, want 1", got)
	}
}
