package urlspan

import "fmt"

type (
	Esc int
)

const (
	// first byte is flags

	EscUpper Esc = 1 << iota
	EscStrict

	_
	_
	_
	_
	_
	_

	Truncated
	ErrEscape

	EscErr = ErrEscape
)

// EncodedLen is the number of bytes Encode writes for src,
// not counting the terminating zero.
func EncodedLen[T Text](src T, flags Esc) (n int) {
	set := csel(flags.Is(EscStrict), StrictUnreserved, Unreserved)

	for i := 0; i < len(src); i++ {
		n += csel(set.Is(src[i]), 1, 3)
	}

	return n
}

// Encode percent-encodes src into dst.
// At most len(dst)-1 bytes are written and dst[n] is set to zero.
// An escape is written whole or not at all.
// Truncated is reported if src didn't fit.
func Encode[T Text](dst []byte, src T, flags Esc) (s Esc, n int) {
	set := csel(flags.Is(EscStrict), StrictUnreserved, Unreserved)
	digits := csel(flags.Is(EscUpper), hexu, hex)

	lim := len(dst) - 1
	i := 0

	for i < len(src) && n < lim {
		c := src[i]

		if set.Is(c) {
			dst[n] = c
			n++
			i++

			continue
		}

		if lim-n < 3 {
			break
		}

		dst[n], dst[n+1], dst[n+2] = '%', digits[c>>4], digits[c&0xf]
		n += 3
		i++
	}

	if i < len(src) {
		s |= Truncated
	}

	if len(dst) != 0 {
		dst[n] = 0
	}

	return s, n
}

// Decode reverses Encode. Hex digits are case-insensitive and '+' is kept as is.
// A '%' not followed by two hex digits stops decoding with ErrEscape;
// n is the number of bytes decoded before it.
func Decode[T Text](dst []byte, src T) (s Esc, n int) {
	lim := len(dst) - 1
	i := 0

	for i < len(src) && n < lim {
		if src[i] != '%' {
			dst[n] = src[i]
			n++
			i++

			continue
		}

		c, ok := unhex(src, i)
		if !ok {
			s |= ErrEscape
			break
		}

		dst[n] = c
		n++
		i += 3
	}

	if !s.Err() && i < len(src) {
		s |= Truncated
	}

	if len(dst) != 0 {
		dst[n] = 0
	}

	return s, n
}

func AppendEncode[T Text](buf []byte, src T, flags Esc) []byte {
	set := csel(flags.Is(EscStrict), StrictUnreserved, Unreserved)
	digits := csel(flags.Is(EscUpper), hexu, hex)

	for i := 0; i < len(src); {
		done := i
		i = Skip(src, i, set)

		buf = append(buf, src[done:i]...)
		if i == len(src) {
			break
		}

		buf = append(buf, '%', digits[src[i]>>4], digits[src[i]&0xf])
		i++
	}

	return buf
}

// AppendDecode appends decoded src to buf.
// On ErrEscape buf holds everything decoded before the bad escape.
func AppendDecode[T Text](buf []byte, src T) (s Esc, _ []byte) {
	for i := 0; i < len(src); {
		done := i
		i = indexByte(src, i, '%')
		if i < 0 {
			i = len(src)
		}

		buf = append(buf, src[done:i]...)
		if i == len(src) {
			break
		}

		c, ok := unhex(src, i)
		if !ok {
			return s | ErrEscape, buf
		}

		buf = append(buf, c)
		i += 3
	}

	return s, buf
}

func unhex[T Text](b T, i int) (byte, bool) {
	if i+2 >= len(b) {
		return 0, false
	}

	hi, lo := hexval[b[i+1]], hexval[b[i+2]]
	if hi|lo < 0 {
		return 0, false
	}

	return byte(hi)<<4 | byte(lo), true
}

func (s Esc) Err() bool {
	return s&EscErr != 0
}

func (s Esc) Is(f Esc) bool {
	return s&f == f
}

func (s Esc) Format(state fmt.State, v rune) {
	if s.Err() {
		fmt.Fprint(state, s.Error())
		return
	}

	fmt.Fprintf(state, "%#x", int(s))
}

func (s Esc) Error() string {
	switch {
	case s.Is(ErrEscape):
		return "bad escape"
	case s.Is(Truncated):
		return "short buffer"
	default:
		return "ok"
	}
}
