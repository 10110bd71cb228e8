package source

import (
	"fmt"
)

// Span is a half-open range [Start, Start+Length) of character offsets.
type Span struct {
	Start  uint32 // в символах, включительно
	Length uint32
}

// NewSpan builds a span from a start offset and a length.
func NewSpan(start, length uint32) Span {
	return Span{Start: start, Length: length}
}

// SpanFromBounds builds a span from [start, end). end must not precede start.
func SpanFromBounds(start, end uint32) Span {
	if end < start {
		panic(fmt.Sprintf("source: span end %d before start %d", end, start))
	}
	return Span{Start: start, Length: end - start}
}

// End returns the exclusive end offset.
func (s Span) End() uint32 {
	return s.Start + s.Length
}

func (s Span) Empty() bool {
	return s.Length == 0
}

// Contains reports whether pos lies inside the half-open span.
func (s Span) Contains(pos uint32) bool {
	return pos >= s.Start && pos < s.End()
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	start := min(s.Start, other.Start)
	end := max(s.End(), other.End())
	return SpanFromBounds(start, end)
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End())
}
