package lexer

import (
	"quill/internal/source"
)

// Cursor представляет собой позицию в тексте (в символах, не в байтах).
type Cursor struct {
	Text *source.Text
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to Text.Len().
	Limit uint32
}

// NewCursor creates a new cursor over the provided text.
func NewCursor(t *source.Text) Cursor {
	return Cursor{
		Text:  t,
		Off:   0,
		Limit: t.Len(),
	}
}

// EOF проверяет, достигнут ли конец текста.
// Конец определяется только позицией: символ U+0000 внутри текста не EOF.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий символ, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	r, _ := c.Text.At(c.Off)
	return r
}

// Peek2 читает текущий и следующий символ, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	r0, _ = c.Text.At(c.Off)
	r1, _ = c.Text.At(c.Off + 1)
	return r0, r1, true
}

// Bump перемещает курсор на один символ вперед и возвращает прочитанный символ
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.Peek()
	c.Off++
	return r
}

// BumpWhile consumes the maximal run of characters satisfying pred.
func (c *Cursor) BumpWhile(pred func(rune) bool) {
	for !c.EOF() && pred(c.Peek()) {
		c.Off++
	}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.SpanFromBounds(uint32(m), c.Off)
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next character if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.Peek() == r {
		c.Off++
		return true
	}
	return false
}
