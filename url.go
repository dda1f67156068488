package urlspan

import "strings"

type (
	Part int

	// URL holds the components of a parsed URL as spans over the input.
	// State tells which components are present, so an absent Port and
	// an empty one after "host:" are distinguishable.
	URL struct {
		Scheme   Span
		Username Span
		Password Span
		Host     Span
		Port     Span
		Path     Span
		Query    Span
		Fragment Span

		State Part
	}
)

const (
	Scheme Part = 1 << iota
	Username
	Password
	Host
	Port
	Path
	Query
	Fragment

	IPv6

	_
	_
	_
	_
	_
	_
	_

	ErrColon
	ErrScheme
	ErrAuthority
	ErrAt
	ErrPath

	Parts  = Scheme | Username | Password | Host | Port | Path | Query | Fragment
	URLErr = ErrColon | ErrScheme | ErrAuthority | ErrAt | ErrPath
)

// Components lists the URL parts in the order they appear in the input.
var Components = []Part{Scheme, Username, Password, Host, Port, Path, Query, Fragment}

var (
	userinfoLook = NewWideset("@/")
	usernameStop = NewWideset(":@")
	hostStop     = NewWideset(":/")
	portStop     = NewWideset("/")
	pathStop     = NewWideset("?#")
	queryStop    = NewWideset("#")
	passwordStop = NewWideset("@")
)

// Parse splits b into URL components.
func Parse[T Text](b T) (URL, error) {
	u, _ := ParseURL(b, 0)

	return u, u.Err()
}

// ParseURL parses b[st:] as scheme://[user[:pass]@]host[:port][/path][?query][#fragment].
// Spans are offsets into b. It returns the index where parsing stopped,
// which is len(b) unless u.State has an error bit set.
// Reserved characters inside components must already be percent-encoded.
func ParseURL[T Text](b T, st int) (u URL, i int) {
	//	defer func() { log.Printf("ParseURL %d -> %d  => %v", st, i, u.State) }()
	i = st

	colon := indexByte(b, i, ':')
	if colon < 0 {
		return u.fail(ErrColon), i
	}

	if end := Skip(b, i, SchemeChars); end < colon || colon == i {
		return u.fail(ErrScheme), end
	}

	u.Scheme = span(i, colon)
	u.State |= Scheme
	i = colon + 1

	if !prefixAt(b, i, "//") {
		return u.fail(ErrAuthority), i
	}

	i += 2

	if at := Until(b, i, userinfoLook); at < len(b) && b[at] == '@' {
		end := Until(b, i, usernameStop)

		u.Username = span(i, end)
		u.State |= Username
		i = end

		if i < len(b) && b[i] == ':' {
			i++
			end = Until(b, i, passwordStop)

			u.Password = span(i, end)
			u.State |= Password
			i = end
		}

		if i == len(b) || b[i] != '@' {
			return u.fail(ErrAt), i
		}

		i++
	}

	var end int

	if i < len(b) && b[i] == '[' {
		end = indexByte(b, i, ']')
		end = csel(end < 0, len(b), end+1)

		u.State |= IPv6
	} else {
		end = Until(b, i, hostStop)
	}

	u.Host = span(i, end)
	u.State |= Host
	i = end

	if i < len(b) && b[i] == ':' {
		i++
		end = Until(b, i, portStop)

		u.Port = span(i, end)
		u.State |= Port
		i = end
	}

	if i == len(b) {
		return u, i
	}

	if b[i] != '/' {
		return u.fail(ErrPath), i
	}

	i++
	end = Until(b, i, pathStop)

	u.Path = span(i, end)
	u.State |= Path
	i = end

	if i < len(b) && b[i] == '?' {
		i++
		end = Until(b, i, queryStop)

		u.Query = span(i, end)
		u.State |= Query
		i = end
	}

	if i < len(b) && b[i] == '#' {
		i++

		u.Fragment = span(i, len(b))
		u.State |= Fragment
		i = len(b)
	}

	return u, i
}

func (u URL) fail(e Part) URL {
	u.State |= e
	return u
}

func (u URL) Has(p Part) bool {
	return u.State&p == p
}

// Err returns the parse error or nil.
// The result is exactly one of the Err* constants, so errors.Is works on it.
func (u URL) Err() error {
	if e := u.State & URLErr; e != 0 {
		return e
	}

	return nil
}

// Span returns the span of a single component.
func (u URL) Span(p Part) Span {
	switch p {
	case Scheme:
		return u.Scheme
	case Username:
		return u.Username
	case Password:
		return u.Password
	case Host:
		return u.Host
	case Port:
		return u.Port
	case Path:
		return u.Path
	case Query:
		return u.Query
	case Fragment:
		return u.Fragment
	default:
		panic(p)
	}
}

// Authority covers user-info, host and port, without the leading "//".
func (u URL) Authority() Span {
	st := csel(u.Has(Username), u.Username.Off, u.Host.Off)
	end := csel(u.Has(Port), u.Port.End(), u.Host.End())

	return span(st, end)
}

func (p Part) Err() bool {
	return p&URLErr != 0
}

func (p Part) Is(f Part) bool {
	return p&f == f
}

func (p Part) Any(f Part) bool {
	return p&f != 0
}

func (p Part) String() string {
	var b strings.Builder

	add := func(f Part, t string) {
		if !p.Is(f) {
			return
		}

		if b.Len() != 0 {
			b.WriteByte('|')
		}

		b.WriteString(t)
	}

	add(Scheme, "scheme")
	add(Username, "username")
	add(Password, "password")
	add(Host, "host")
	add(Port, "port")
	add(Path, "path")
	add(Query, "query")
	add(Fragment, "fragment")
	add(IPv6, "ipv6")

	return b.String()
}

func (p Part) Error() string {
	if !p.Err() {
		return p.String()
	}

	r := ""
	comma := false

	add := func(e Part, t string) {
		if !p.Is(e) {
			return
		}

		r += csel(comma, ", ", "")
		r += t
		comma = true
	}

	add(ErrColon, "missing scheme colon")
	add(ErrScheme, "bad scheme")
	add(ErrAuthority, "missing authority marker")
	add(ErrAt, "missing user-info separator")
	add(ErrPath, "missing path separator")

	return r
}

func csel[T any](c bool, x, y T) T {
	if c {
		return x
	}

	return y
}
