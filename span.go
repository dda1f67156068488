package urlspan

import "fmt"

// Span is a half-open byte range [Off, Off+Len) within the parsed input.
// It does not own the input and is only meaningful with the same buffer.
type Span struct {
	Off int
	Len int
}

func (s Span) End() int { return s.Off + s.Len }

func (s Span) Empty() bool { return s.Len == 0 }

func (s Span) Bytes(b []byte) []byte {
	return b[s.Off:s.End():s.End()]
}

func (s Span) Text(b string) string {
	return b[s.Off:s.End()]
}

// Slice returns the part of b covered by s without copying.
func Slice[T Text](b T, s Span) T {
	return b[s.Off:s.End()]
}

func (s Span) Format(state fmt.State, v rune) {
	fmt.Fprintf(state, "%d+%d", s.Off, s.Len)
}

func span(st, end int) Span {
	return Span{Off: st, Len: end - st}
}
