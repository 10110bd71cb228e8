package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/syntax"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	reporter := &testReporter{}
	lx := lexer.New(source.FromString(input), lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens собирает все токены до EOF включительно
func collectAllTokens(lx *lexer.Lexer) []syntax.Token {
	tokens := make([]syntax.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind() == syntax.EOF {
			return tokens
		}
	}
}

func tokensToString(tokens []syntax.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind(), tok.Text())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов без EOF
func expectTokens(t *testing.T, input string, expected []syntax.Kind) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind() != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind(), tok.Text())
		}
	}
}

func TestScenarioNumberPlusNumber(t *testing.T) {
	lx, reporter := makeTestLexer("12+3")
	tokens := collectAllTokens(lx)

	type want struct {
		kind syntax.Kind
		text string
		pos  uint32
		num  int64
	}
	expected := []want{
		{syntax.Number, "12", 0, 12},
		{syntax.Plus, "+", 2, 0},
		{syntax.Number, "3", 3, 3},
		{syntax.EOF, "", 4, 0},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokensToString(tokens))
	}
	for i, w := range expected {
		tok := tokens[i]
		if tok.Kind() != w.kind || tok.Text() != w.text || tok.Position() != w.pos {
			t.Errorf("token %d = %v, want %v %q @%d", i, tok, w.kind, w.text, w.pos)
		}
		if w.kind == syntax.Number {
			if got := tok.Value().AsNumber(); got != w.num {
				t.Errorf("token %d value = %d, want %d", i, got, w.num)
			}
		} else if !tok.Value().IsNull() {
			t.Errorf("token %d: non-number token carries value %s", i, tok.Value())
		}
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", reporter.diagnostics)
	}
}

func TestGreedyOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []syntax.Kind
	}{
		{"!=", []syntax.Kind{syntax.BangEq}},
		{"!x", []syntax.Kind{syntax.Bang, syntax.Ident}},
		{"==", []syntax.Kind{syntax.EqEq}},
		{"=", []syntax.Kind{syntax.Assign}},
		{"===", []syntax.Kind{syntax.EqEq, syntax.Assign}},
		{"&&&", []syntax.Kind{syntax.AndAnd, syntax.Amp}},
		{"||", []syntax.Kind{syntax.OrOr}},
		{"| |", []syntax.Kind{syntax.Pipe, syntax.Whitespace, syntax.Pipe}},
		{"<=<", []syntax.Kind{syntax.LtEq, syntax.Lt}},
		{">=>", []syntax.Kind{syntax.GtEq, syntax.Gt}},
		{"!!=", []syntax.Kind{syntax.Bang, syntax.BangEq}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestSingleCharacterPunctuation(t *testing.T) {
	for _, k := range []syntax.Kind{
		syntax.Plus, syntax.Minus, syntax.Star, syntax.Slash, syntax.Bang, syntax.Assign,
		syntax.Lt, syntax.Gt, syntax.Amp, syntax.Pipe, syntax.Caret, syntax.Tilde,
		syntax.LParen, syntax.RParen, syntax.LBrace, syntax.RBrace,
	} {
		text := syntax.FixedText(k)
		t.Run(text, func(t *testing.T) {
			lx, _ := makeTestLexer(text)
			tok := lx.Next()
			if tok.Kind() != k || tok.Text() != text {
				t.Errorf("got %v, want %v %q", tok, k, text)
			}
		})
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.Kind
	}{
		{"let", syntax.KwLet},
		{"var", syntax.KwVar},
		{"if", syntax.KwIf},
		{"else", syntax.KwElse},
		{"while", syntax.KwWhile},
		{"for", syntax.KwFor},
		{"to", syntax.KwTo},
		{"true", syntax.KwTrue},
		{"false", syntax.KwFalse},
		{"Let", syntax.Ident},
		{"toy", syntax.Ident},
		{"héllo", syntax.Ident},
		{"привет", syntax.Ident},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind() != tt.kind || tok.Text() != tt.input {
				t.Errorf("got %v, want %v", tok, tt.kind)
			}
			if !tok.Value().IsNull() {
				t.Errorf("word token carries value %s", tok.Value())
			}
		})
	}
}

func TestWordsStopAtDigits(t *testing.T) {
	expectTokens(t, "x1", []syntax.Kind{syntax.Ident, syntax.Number})
	expectTokens(t, "12ab", []syntax.Kind{syntax.Number, syntax.Ident})
}

func TestWhitespaceIsOneToken(t *testing.T) {
	lx, _ := makeTestLexer(" \t\r\n  x")
	tok := lx.Next()
	if tok.Kind() != syntax.Whitespace || tok.Text() != " \t\r\n  " {
		t.Fatalf("got %v", tok)
	}
	if next := lx.Next(); next.Kind() != syntax.Ident || next.Position() != 6 {
		t.Errorf("got %v", next)
	}
}

func TestNumberOverflow(t *testing.T) {
	const maxText = "9223372036854775807"
	const overText = "9223372036854775808"

	lx, reporter := makeTestLexer(maxText)
	if tok := lx.Next(); tok.Value().AsNumber() != 9223372036854775807 {
		t.Errorf("max int64 = %s", tok.Value())
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("max int64 reported %v", reporter.diagnostics)
	}

	lx, reporter = makeTestLexer(overText + "+1")
	tok := lx.Next()
	if tok.Kind() != syntax.Number || tok.Text() != overText {
		t.Fatalf("got %v", tok)
	}
	if tok.Value().AsNumber() != 0 {
		t.Errorf("overflow value = %s, want 0", tok.Value())
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", reporter.diagnostics)
	}
	d := reporter.diagnostics[0]
	if got := d.String(); got != "ERROR: invalid i64: "+overText {
		t.Errorf("message = %q", got)
	}
	if d.Code != diag.LexBadNumber || d.Primary != source.NewSpan(0, 19) {
		t.Errorf("code/span = %v %v", d.Code.ID(), d.Primary)
	}
	// сканирование продолжается
	if next := lx.Next(); next.Kind() != syntax.Plus {
		t.Errorf("after overflow got %v", next)
	}
}

func TestBadCharacter(t *testing.T) {
	lx, reporter := makeTestLexer("a$b")
	tokens := collectAllTokens(lx)
	expected := []syntax.Kind{syntax.Ident, syntax.BadToken, syntax.Ident, syntax.EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokensToString(tokens))
	}
	for i, k := range expected {
		if tokens[i].Kind() != k {
			t.Errorf("token %d = %v, want %v", i, tokens[i].Kind(), k)
		}
	}
	if tokens[1].Text() != "$" || tokens[1].Position() != 1 {
		t.Errorf("bad token = %v", tokens[1])
	}

	msgs := lx.Diagnostics().Messages()
	if len(msgs) != 1 || msgs[0] != "ERROR: bad character input: '$'" {
		t.Errorf("bag messages = %q", msgs)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Primary != source.NewSpan(1, 1) {
		t.Errorf("reporter = %v", reporter.diagnostics)
	}
}

func TestBadCharacterAdvancesOneCharacter(t *testing.T) {
	expectTokens(t, "$€@", []syntax.Kind{syntax.BadToken, syntax.BadToken, syntax.BadToken})
	expectTokens(t, "\x00", []syntax.Kind{syntax.BadToken})
}

func TestEOFIsIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next()
	for i := range 3 {
		tok := lx.Next()
		if tok.Kind() != syntax.EOF || tok.Position() != 1 || tok.Text() != "" {
			t.Fatalf("call %d: got %v", i, tok)
		}
	}
	if tok := lx.Next(); tok.Span().Length != 0 {
		t.Errorf("EOF span = %v", tok.Span())
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, bag := lexer.Tokenize(source.FromString(""), lexer.Options{})
	if len(tokens) != 1 || tokens[0].Kind() != syntax.EOF || tokens[0].Position() != 0 {
		t.Errorf("got %v", tokensToString(tokens))
	}
	if bag.Len() != 0 {
		t.Errorf("bag = %v", bag.Messages())
	}
}

var roundTripInputs = []string{
	"",
	"12+3",
	"let x = 10\nwhile x != 0 { x = x - 1 }\r\n",
	"for i = 1 to 10 { if i == 5 { } else { } }",
	"99999999999999999999 $$ héllo ∑ !x&&y||z",
	"\t\t\r\r\n\n",
	"(a<=b)>=~c^d",
	"\x00\x01\x7f",
}

// Конкатенация текстов всех токенов восстанавливает исходник,
// а число токенов не превышает длину + 1.
func TestLosslessAndTerminating(t *testing.T) {
	for _, input := range roundTripInputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			text := source.FromString(input)
			tokens, _ := lexer.Tokenize(text, lexer.Options{})

			if uint32(len(tokens)) > text.Len()+1 {
				t.Errorf("too many tokens: %d for %d characters", len(tokens), text.Len())
			}
			var sb strings.Builder
			var pos uint32
			for _, tok := range tokens {
				if tok.Position() != pos {
					t.Fatalf("token %v starts at %d, want %d", tok, tok.Position(), pos)
				}
				if got := text.StringSpan(tok.Span()); got != tok.Text() {
					t.Fatalf("token text %q != source slice %q", tok.Text(), got)
				}
				sb.WriteString(tok.Text())
				pos = tok.Span().End()
			}
			if sb.String() != input {
				t.Errorf("reconstructed %q, want %q", sb.String(), input)
			}
		})
	}
}

func TestTokenizeMatchesNext(t *testing.T) {
	input := "var ok = true && !false"
	tokens, _ := lexer.Tokenize(source.FromString(input), lexer.Options{})
	lx, _ := makeTestLexer(input)
	streamed := collectAllTokens(lx)
	if tokensToString(tokens) != tokensToString(streamed) {
		t.Errorf("Tokenize %v\nNext     %v", tokensToString(tokens), tokensToString(streamed))
	}
}

func TestMaxDiagnostics(t *testing.T) {
	tokens, bag := lexer.Tokenize(source.FromString("$$$$"), lexer.Options{MaxDiagnostics: 2})
	if len(tokens) != 5 {
		t.Errorf("tokens = %v", tokensToString(tokens))
	}
	if bag.Len() != 2 {
		t.Errorf("bag kept %d diagnostics, want 2", bag.Len())
	}
}

func TestReporterReceivesSameDiagnostics(t *testing.T) {
	lx, reporter := makeTestLexer("1$99999999999999999999")
	collectAllTokens(lx)
	items := lx.Diagnostics().Items()
	if len(items) != 2 || len(reporter.diagnostics) != 2 {
		t.Fatalf("bag %d, reporter %d", len(items), len(reporter.diagnostics))
	}
	for i := range items {
		if items[i].String() != reporter.diagnostics[i].String() {
			t.Errorf("diag %d: bag %q reporter %q", i, items[i], reporter.diagnostics[i])
		}
	}
}
