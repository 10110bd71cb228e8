package lexer

import (
	"unicode"

	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/value"
)

// Lexer превращает source.Text в поток токенов. Пробелы и нераспознанные
// символы выдаются как обычные токены, так что конкатенация Text всех
// токенов в точности восстанавливает исходник.
//
// Экземпляр не предназначен для конкурентного использования.
type Lexer struct {
	text     *source.Text
	cursor   Cursor
	opts     Options
	bag      *diag.Bag
	reporter diag.Reporter
}

func New(text *source.Text, opts Options) *Lexer {
	bag := diag.NewBag(opts.MaxDiagnostics)
	var reporter diag.Reporter = diag.BagReporter{Bag: bag}
	if opts.Reporter != nil {
		reporter = diag.MultiReporter{reporter, opts.Reporter}
	}
	return &Lexer{
		text:     text,
		cursor:   NewCursor(text),
		opts:     opts,
		bag:      bag,
		reporter: reporter,
	}
}

// Next возвращает следующий токен, включая Whitespace и BadToken.
// После конца текста всегда возвращает один и тот же EOF нулевой длины.
// Позиция курсора строго растёт на каждом вызове, кроме EOF.
func (lx *Lexer) Next() syntax.Token {
	// 1) Конец текста определяется только позицией
	if lx.cursor.EOF() {
		return syntax.NewToken(syntax.EOF, lx.cursor.Off, "", value.Null())
	}

	// 2) Классификация по текущему символу: цифра → буква → пробел → пунктуация
	ch := lx.cursor.Peek()
	switch {
	case unicode.IsDigit(ch):
		return lx.scanNumber()
	case unicode.IsLetter(ch):
		return lx.scanWord()
	case unicode.IsSpace(ch):
		return lx.scanWhitespace()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Diagnostics returns every diagnostic reported so far, in order.
func (lx *Lexer) Diagnostics() *diag.Bag {
	return lx.bag
}

// Offset is the position the next token will start at.
func (lx *Lexer) Offset() uint32 {
	return lx.cursor.Off
}

func (lx *Lexer) emit(kind syntax.Kind, start Mark, val value.Value) syntax.Token {
	sp := lx.cursor.SpanFrom(start)
	return syntax.NewToken(kind, sp.Start, lx.text.StringSpan(sp), val)
}

// Tokenize scans text to the end and returns every token, the final EOF
// included, together with the lexer's diagnostics.
func Tokenize(text *source.Text, opts Options) ([]syntax.Token, *diag.Bag) {
	lx := New(text, opts)
	tokens := make([]syntax.Token, 0, text.Len()/2+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind() == syntax.EOF {
			return tokens, lx.Diagnostics()
		}
	}
}
