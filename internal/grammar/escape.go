package grammar

import (
	"strings"

	"github.com/ghettovoice/gohttp/internal/constraints"
)

const upperHex = "0123456789ABCDEF"

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// IsEscaped reports whether every '%' in s starts a well-formed "%XX" escape.
// Strings without '%' are trivially escaped.
func IsEscaped[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return false
		}
		i += 2
	}
	return true
}

// Escape percent-encodes every byte of s that is neither unreserved nor in safe.
// Non-ASCII characters are escaped byte by byte of their UTF-8 sequence using
// uppercase hex digits.
//
// If s already consists of well-formed escapes wherever '%' appears, the '%' itself
// is kept as is, so escaping an escaped string returns it unchanged.
// Otherwise, every '%' is escaped like any other unsafe byte.
func Escape[T constraints.Byteseq](s T, safe CharSet) T {
	safe = safe.Union(Unreserved)
	if IsEscaped(s) {
		safe = safe.Add("%")
	}

	n := 0
	for i := range len(s) {
		if !safe.Has(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*n)
	for i := range len(s) {
		if c := s[i]; safe.Has(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&15])
		}
	}
	return T(sb.String())
}

// LCaseUnescaped lower-cases every byte of s that is not part of a well-formed "%XX" escape.
// The hex digits of escapes keep their case.
func LCaseUnescaped[T constraints.Byteseq](s T) T {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			i += 2
			continue
		}
		if 'A' <= c && c <= 'Z' {
			if b == nil {
				b = []byte(string(s))
			}
			b[i] = c + 'a' - 'A'
		}
	}
	if b == nil {
		return s
	}
	return T(b)
}

// Unescape decodes well-formed "%XX" escapes of s.
// Malformed escapes are left untouched.
func Unescape[T constraints.Byteseq](s T) T {
	if !strings.Contains(string(s), "%") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		sb.WriteByte(s[i])
	}
	return T(sb.String())
}
