package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination ../internal/testutil/idnamock/idnamock.go -package idnamock . IDNAEncoder

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/ioutil"
)

// ParseResult is an immutable, normalized URL.
//
// All components are stored in their canonical ASCII form: the scheme is lower-cased,
// the host is lower-cased and IDNA/percent-encoded (IPv6 literals are stored without brackets),
// a port equal to the scheme default is dropped, and the remaining components
// are percent-encoded.
//
// The zero value is the empty relative URL.
// Instances are created by [Parse], [Parser.Parse] or [ParseResult.CopyWith] only.
type ParseResult struct {
	scheme   string
	userinfo string
	host     string
	path     string
	query    string
	fragment string
	port     uint16

	hasPort     bool
	hasQuery    bool
	hasFragment bool

	parser *Parser
}

// Scheme returns the lower-cased scheme, it may be empty.
func (u *ParseResult) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// Userinfo returns the percent-encoded userinfo ("user:password" or "user"), it may be empty.
func (u *ParseResult) Userinfo() string {
	if u == nil {
		return ""
	}
	return u.userinfo
}

// Host returns the normalized host.
// IPv6 literals are returned without brackets.
func (u *ParseResult) Host() string {
	if u == nil {
		return ""
	}
	return u.host
}

// Port returns the explicit port, in case it is set, and bool flag indicating whether it is set.
// A port equal to the default port of the scheme is never set.
func (u *ParseResult) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	return u.port, u.hasPort
}

// Path returns the percent-encoded path.
func (u *ParseResult) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the percent-encoded query and bool flag indicating whether the query is present.
// A present empty query corresponds to a bare trailing "?".
func (u *ParseResult) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query, u.hasQuery
}

// Fragment returns the percent-encoded fragment and bool flag indicating whether the fragment is present.
// A present empty fragment corresponds to a bare trailing "#".
func (u *ParseResult) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment, u.hasFragment
}

// Authority returns the "userinfo@host:port" part of the URL.
// IPv6 hosts are enclosed in brackets.
func (u *ParseResult) Authority() string {
	if u == nil {
		return ""
	}
	if u.userinfo == "" {
		return u.Netloc()
	}
	return u.userinfo + "@" + u.Netloc()
}

// Netloc returns the "host:port" part of the URL, suitable for the HTTP Host header.
// IPv6 hosts are enclosed in brackets.
func (u *ParseResult) Netloc() string {
	if u == nil {
		return ""
	}
	host := u.bracketedHost()
	if !u.hasPort {
		return host
	}
	return host + ":" + strconv.Itoa(int(u.port))
}

func (u *ParseResult) bracketedHost() string {
	if strings.Contains(u.host, ":") {
		return "[" + u.host + "]"
	}
	return u.host
}

// FullPath returns the path followed by "?query" when the query is present.
func (u *ParseResult) FullPath() string {
	if u == nil {
		return ""
	}
	if !u.hasQuery {
		return u.path
	}
	return u.path + "?" + u.query
}

// RequestTarget returns the origin-form request target of the URL:
// the path, or "/" if it is empty, followed by "?query" when the query is present.
func (u *ParseResult) RequestTarget() string {
	path := u.Path()
	if path == "" {
		path = "/"
	}
	if q, ok := u.Query(); ok {
		return path + "?" + q
	}
	return path
}

// Username returns the decoded user name from the userinfo.
func (u *ParseResult) Username() string {
	if u == nil {
		return ""
	}
	usr, _, _ := strings.Cut(u.userinfo, ":")
	return grammar.Unescape(usr)
}

// Password returns the decoded password from the userinfo and bool flag indicating whether it is set.
func (u *ParseResult) Password() (string, bool) {
	if u == nil {
		return "", false
	}
	_, pwd, ok := strings.Cut(u.userinfo, ":")
	if !ok {
		return "", false
	}
	return grammar.Unescape(pwd), true
}

// IsAbsolute reports whether the URL has both scheme and host.
func (u *ParseResult) IsAbsolute() bool {
	return u != nil && u.scheme != "" && u.host != ""
}

// IsRelative reports whether the URL lacks either scheme or host.
func (u *ParseResult) IsRelative() bool { return !u.IsAbsolute() }

// HostPort returns the "host:port" dial address of the URL.
// The default port of the scheme is used when the port is not set.
// Empty string is returned if the host is empty or no port can be determined.
func (u *ParseResult) HostPort() string {
	if u == nil || u.host == "" {
		return ""
	}
	port, ok := u.port, u.hasPort
	if !ok {
		if port, ok = DefaultPort(u.scheme); !ok {
			return ""
		}
	}
	return net.JoinHostPort(u.host, strconv.Itoa(int(port)))
}

// RenderTo writes the canonical URL string to w.
func (u *ParseResult) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.NewCountingWriter(w)
	if u.scheme != "" {
		cw.WriteStrings(u.scheme, ":")
	}
	if auth := u.Authority(); auth != "" {
		cw.WriteStrings("//", auth)
	}
	cw.WriteStrings(u.path)
	if u.hasQuery {
		cw.WriteStrings("?", u.query)
	}
	if u.hasFragment {
		cw.WriteStrings("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the canonical URL string.
func (u *ParseResult) String() string {
	if u == nil {
		return ""
	}
	var sb strings.Builder
	u.RenderTo(&sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *ParseResult) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	case 'v':
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}
	}

	type hideMethods ParseResult
	type ParseResult hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*ParseResult)(u))
}

// Equal compares this URL with another for equality.
// URLs are equal when all their canonical components are equal.
func (u *ParseResult) Equal(val any) bool {
	var other *ParseResult
	switch v := val.(type) {
	case ParseResult:
		other = &v
	case *ParseResult:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.scheme == other.scheme &&
		u.userinfo == other.userinfo &&
		u.host == other.host &&
		u.port == other.port && u.hasPort == other.hasPort &&
		u.path == other.path &&
		u.query == other.query && u.hasQuery == other.hasQuery &&
		u.fragment == other.fragment && u.hasFragment == other.hasFragment
}

// CopyWith returns a new URL with the given components replaced.
//
// The current components are serialized, the overrides are merged on top of them
// and the result is parsed again with the parser which has built u,
// so the copy is validated exactly as a fresh parse would be.
// If comps is empty, u is returned as is.
func (u *ParseResult) CopyWith(comps Components) (*ParseResult, error) {
	var p *Parser
	if u != nil {
		p = u.parser
	}
	return errtrace.Wrap2(p.CopyWith(u, comps))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *ParseResult) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *ParseResult) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text), nil)
	if err != nil {
		*u = ParseResult{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// LogValue implements [slog.LogValuer].
// The password part of the userinfo is redacted.
func (u *ParseResult) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	if _, ok := u.Password(); !ok {
		return slog.StringValue(u.String())
	}
	redacted := *u
	usr, _, _ := strings.Cut(u.userinfo, ":")
	redacted.userinfo = usr + ":xxxxx"
	return slog.StringValue(redacted.String())
}
