package source

import (
	"math/rand"
	"strings"
	"testing"
)

func TestFromIncludesLastLine(t *testing.T) {
	cases := []struct {
		text  string
		lines int
	}{
		{"", 1},
		{".", 1},
		{".\r\n", 2},
		{".\r\n\r\n", 3},
		{"a\nb", 2},
		{"\r\r", 3},
		{"\n\r", 3},
	}
	for _, tc := range cases {
		got := FromString(tc.text).LineCount()
		if got != tc.lines {
			t.Errorf("FromString(%q): %d lines, want %d", tc.text, got, tc.lines)
		}
	}
}

func TestLineDescriptors(t *testing.T) {
	text := FromString(".\r\n\r\n")
	want := []Line{
		{Start: 0, Length: 1, LengthWithBreak: 3},
		{Start: 3, Length: 0, LengthWithBreak: 2},
		{Start: 5, Length: 0, LengthWithBreak: 0},
	}
	got := text.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLineStrings(t *testing.T) {
	text := FromString("let x = 1\r\nx\n")
	if n := text.LineCount(); n != 3 {
		t.Fatalf("LineCount = %d, want 3", n)
	}
	checks := []struct {
		idx       int
		bare      string
		withBreak string
	}{
		{0, "let x = 1", "let x = 1\r\n"},
		{1, "x", "x\n"},
		{2, "", ""},
	}
	for _, c := range checks {
		line := text.Line(c.idx)
		if got := text.LineString(line); got != c.bare {
			t.Errorf("LineString(%d) = %q, want %q", c.idx, got, c.bare)
		}
		if got := text.LineStringWithBreak(line); got != c.withBreak {
			t.Errorf("LineStringWithBreak(%d) = %q, want %q", c.idx, got, c.withBreak)
		}
	}
}

func TestLineIndex(t *testing.T) {
	text := FromString("ab\ncd\r\n\nx")
	// lines: [0,3) [3,7) [7,8) [8,9]
	cases := map[uint32]int{
		0: 0, 1: 0, 2: 0,
		3: 1, 5: 1, 6: 1,
		7: 2,
		8: 3, 9: 3,
		100: 3, // за концом: последняя строка
	}
	for pos, want := range cases {
		if got := text.LineIndex(pos); got != want {
			t.Errorf("LineIndex(%d) = %d, want %d", pos, got, want)
		}
	}
}

func TestLineIndexEmptyText(t *testing.T) {
	text := FromString("")
	if got := text.LineIndex(0); got != 0 {
		t.Fatalf("LineIndex(0) = %d, want 0", got)
	}
}

func linearLineIndex(text *Text, pos uint32) int {
	idx := 0
	for i, line := range text.Lines() {
		if line.Start <= pos {
			idx = i
		}
	}
	return idx
}

func randomSource(rng *rand.Rand, n int) string {
	pieces := []string{"\n", "\r", "\r\n", "a", "b", " ", "1"}
	var b strings.Builder
	for range n {
		b.WriteString(pieces[rng.Intn(len(pieces))])
	}
	return b.String()
}

func TestLineIndexMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 300; iter++ {
		text := FromString(randomSource(rng, rng.Intn(40)))
		for pos := uint32(0); pos <= text.Len()+2; pos++ {
			got := text.LineIndex(pos)
			want := linearLineIndex(text, pos)
			if got != want {
				t.Fatalf("source %q: LineIndex(%d) = %d, linear scan = %d", text.String(), pos, got, want)
			}
		}
	}
}

func TestLineCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 300; iter++ {
		text := FromString(randomSource(rng, rng.Intn(50)))
		lines := text.Lines()

		var sum uint32
		var next uint32
		for i, line := range lines {
			if line.Start != next {
				t.Fatalf("source %q: line %d starts at %d, want %d", text.String(), i, line.Start, next)
			}
			if line.LengthWithBreak < line.Length {
				t.Fatalf("source %q: line %d break length smaller than content", text.String(), i)
			}
			sum += line.LengthWithBreak
			next = line.EndWithBreak()
		}
		if sum != text.Len() {
			t.Fatalf("source %q: lines cover %d chars, want %d", text.String(), sum, text.Len())
		}

		last := len(lines) - 1
		for pos := uint32(0); pos <= text.Len(); pos++ {
			idx := text.LineIndex(pos)
			line := lines[idx]
			if line.Start > pos {
				t.Fatalf("source %q: pos %d mapped to line %d starting later", text.String(), pos, idx)
			}
			if pos >= line.EndWithBreak() && idx != last {
				t.Fatalf("source %q: pos %d mapped to line %d ending at %d", text.String(), pos, idx, line.EndWithBreak())
			}
		}
	}
}

func TestPosition(t *testing.T) {
	text := FromString("a\nbc\r\nd")
	cases := []struct {
		pos  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 3}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, c := range cases {
		if got := text.Position(c.pos); got != c.want {
			t.Errorf("Position(%d) = %+v, want %+v", c.pos, got, c.want)
		}
	}
}

func TestStringBounded(t *testing.T) {
	text := FromRunes([]rune("héllo"))
	if got := text.StringBounded(1, 3); got != "éll" {
		t.Fatalf("StringBounded(1,3) = %q", got)
	}
	if got := text.StringSpan(SpanFromBounds(5, 5)); got != "" {
		t.Fatalf("empty span at end = %q", got)
	}
	if got := text.String(); got != "héllo" {
		t.Fatalf("String() = %q", got)
	}
}

func TestStringBoundedPanicsOutOfRange(t *testing.T) {
	text := FromString("abc")
	for _, sp := range []Span{NewSpan(2, 2), NewSpan(4, 0), NewSpan(0xFFFFFFFF, 2)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("StringSpan(%v) did not panic", sp)
				}
			}()
			_ = text.StringSpan(sp)
		}()
	}
}

func TestFromRunesCopiesInput(t *testing.T) {
	chars := []rune("ab")
	text := FromRunes(chars)
	chars[0] = 'z'
	if got := text.String(); got != "ab" {
		t.Fatalf("Text changed after caller mutation: %q", got)
	}
}

func TestAt(t *testing.T) {
	text := FromString("xy")
	if r, ok := text.At(1); !ok || r != 'y' {
		t.Fatalf("At(1) = %q, %v", r, ok)
	}
	if _, ok := text.At(2); ok {
		t.Fatalf("At(2) must report end of text")
	}
}
