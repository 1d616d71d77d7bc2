package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/grammar"
)

// validatePath checks that the path can be rendered without changing the URL structure.
//
// With an authority the path must be empty or absolute (RFC 3986 Section 3.3).
// Without an authority the path must not start with "//", and without scheme
// its first segment must not start with a scheme followed by a colon, otherwise
// it would be re-parsed as an authority or a scheme.
func validatePath(path string, hasScheme, hasAuthority bool) error {
	if hasAuthority {
		if path != "" && !strings.HasPrefix(path, "/") {
			return errtrace.Wrap(newInvalidURLError("path must be empty or begin with '/' when authority is present"))
		}
		return nil
	}
	if strings.HasPrefix(path, "//") {
		return errtrace.Wrap(newInvalidURLError("path must not begin with '//' when authority is absent"))
	}
	if !hasScheme {
		seg, _, _ := strings.Cut(path, "/")
		if pfx, _, ok := strings.Cut(seg, ":"); ok && pfx != "" && grammar.IsComponent("scheme", pfx) {
			return errtrace.Wrap(newInvalidURLError("first path segment %q would be read as a scheme", seg))
		}
	}
	return nil
}

// removeDotSegments drops "." and ".." segments from the path (RFC 3986 Section 5.2.4).
// A ".." never climbs above the root, an absolute path stays absolute.
func removeDotSegments(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	segs := strings.Split(path, "/")
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch seg {
		case ".":
		case "..":
			if len(out) > 1 || len(out) == 1 && out[0] != "" {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}

	res := strings.Join(out, "/")
	if res == "" && strings.HasPrefix(path, "/") {
		return "/"
	}
	return res
}
