package htmltools

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodePath percent-encodes every byte of path outside the unreserved URL
// set (letters, digits, '-', '.', '_', '~'), leaving '/' as a literal
// segment separator. Equivalent to encoding each segment and re-joining
// with '/', so it is safe to apply per-segment or to a joined path.
//
// EncodePath is pure and never fails. It makes no attempt to detect
// already-encoded input: a literal '%' is re-encoded as "%25".
func EncodePath(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '/' || isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

// isUnreserved reports whether c is in the unreserved URL set of RFC 3986.
func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return false
}
