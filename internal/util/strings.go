package util

import (
	"strings"

	"github.com/ghettovoice/gohttp/internal/constraints"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

// IsASCII reports whether s consists of 7-bit characters only.
func IsASCII[T constraints.Byteseq](s T) bool {
	for i := range len(s) {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

// IndexCtl returns the index of the first ASCII control character in s (0x00-0x1F, 0x7F) or -1.
func IndexCtl[T constraints.Byteseq](s T) int {
	for i := range len(s) {
		if c := s[i]; c < 0x20 || c == 0x7f {
			return i
		}
	}
	return -1
}
