package uri

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/util"
)

// DefaultPort returns the well-known port of the scheme and bool flag indicating whether it is known.
// The table follows the WHATWG URL standard special schemes.
func DefaultPort(scheme string) (uint16, bool) {
	switch util.LCase(scheme) {
	case "ftp":
		return 21, true
	case "http", "ws":
		return 80, true
	case "https", "wss":
		return 443, true
	default:
		return 0, false
	}
}

// normalizePort parses the port and drops it when it equals the default port of the scheme.
func normalizePort(port, scheme string) (uint16, bool, error) {
	if port == "" {
		return 0, false, nil
	}
	for i := range len(port) {
		if port[i] < '0' || port[i] > '9' {
			return 0, false, errtrace.Wrap(newInvalidURLError("invalid port %q", port))
		}
	}
	num, err := strconv.ParseUint(port, 10, 16)
	if err != nil || num == 0 {
		return 0, false, errtrace.Wrap(newInvalidURLError("invalid port %q", port))
	}
	if def, ok := DefaultPort(scheme); ok && uint16(num) == def {
		return 0, false, nil
	}
	return uint16(num), true, nil
}
