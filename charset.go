package urlspan

type (
	Charset uint64
	Wideset [2]Charset
)

const (
	hex  = "0123456789abcdef"
	hexu = "0123456789ABCDEF"
)

var (
	Decimals = NewCharset("0123456789")

	Lower   = NewWideset("").MergeRange('a', 'z')
	Upper   = NewWideset("").MergeRange('A', 'Z')
	Letters = Lower.Or(Upper)
	Alnum   = Letters.Or(Decimals.Wide())

	SchemeChars = Letters.Merge("+-.")

	// Unreserved is the set of bytes Encode copies verbatim.
	// It keeps RFC 2396 marks ! * ' ( ) on top of the RFC 3986 set.
	Unreserved       = Alnum.Merge("-._~!*'()")
	StrictUnreserved = Alnum.Merge("-._~")
)

// hexval maps a byte to its hex digit value or -1.
var hexval = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}

	for i := 0; i < 10; i++ {
		t['0'+i] = int8(i)
	}

	for i := 0; i < 6; i++ {
		t['a'+i] = int8(10 + i)
		t['A'+i] = int8(10 + i)
	}

	return t
}()

func NewWideset(s string) (x Wideset) {
	return x.Merge(s)
}

func NewCharset(s string) (x Charset) {
	return x.Merge(s)
}

func (x Wideset) Is(b byte) bool {
	if b < 64 {
		return x[0].Is(b)
	}

	return x[1].Is(b - 64)
}

func (x Wideset) Merge(s string) Wideset {
	for _, c := range []byte(s) {
		x = x.Set(c)
	}

	return x
}

func (x Wideset) MergeRange(a, b byte) Wideset {
	for c := int(a); c <= int(b); c++ {
		x = x.Set(byte(c))
	}

	return x
}

func (x Wideset) Set(b byte) Wideset {
	if b >= 128 {
		panic(b)
	}

	if b < 64 {
		x[0] = x[0].Set(b)
	} else {
		x[1] = x[1].Set(b - 64)
	}

	return x
}

func (x Wideset) Or(y Wideset) Wideset {
	x[0] |= y[0]
	x[1] |= y[1]

	return x
}

func (x Wideset) Not(y Wideset) Wideset {
	x[0] &^= y[0]
	x[1] &^= y[1]

	return x
}

func (x Charset) Is(b byte) bool {
	return b < 64 && x&(1<<b) != 0
}

func (x Charset) Merge(s string) Charset {
	for _, c := range []byte(s) {
		x = x.Set(c)
	}

	return x
}

func (x Charset) Set(b byte) Charset {
	if b >= 64 {
		panic(b)
	}

	return x | 1<<b
}

func (x Charset) Wide() Wideset { return Wideset{x, 0} }
