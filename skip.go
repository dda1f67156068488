package urlspan

type Text interface {
	~string | ~[]byte
}

// Skip returns the index of the first byte at or after i not in set.
func Skip[T Text](b T, i int, set Wideset) int {
	for i < len(b) && set.Is(b[i]) {
		i++
	}

	return i
}

// Until returns the index of the first byte at or after i in stop.
func Until[T Text](b T, i int, stop Wideset) int {
	for i < len(b) && !stop.Is(b[i]) {
		i++
	}

	return i
}

func indexByte[T Text](b T, i int, c byte) int {
	for ; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}

	return -1
}

func prefixAt[T Text](b T, i int, prefix string) bool {
	if i+len(prefix) > len(b) {
		return false
	}

	for j := 0; j < len(prefix); j++ {
		if b[i+j] != prefix[j] {
			return false
		}
	}

	return true
}
