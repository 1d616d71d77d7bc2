package uri

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"golang.org/x/net/idna"

	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/util"
	"github.com/ghettovoice/gohttp/log"
)

// MaxURLLength is the maximum length in characters of a URL and of each URL component.
const MaxURLLength = 65536

// Component names accepted by [Components].
const (
	CompScheme    = "scheme"
	CompAuthority = "authority"
	CompPath      = "path"
	CompQuery     = "query"
	CompFragment  = "fragment"
	CompUserinfo  = "userinfo"
	CompHost      = "host"
	CompPort      = "port"

	// CompNetloc is split into host and port.
	CompNetloc = "netloc"
	// CompUsername is percent-encoded and joined with password into userinfo.
	CompUsername = "username"
	// CompPassword is percent-encoded and joined with username into userinfo.
	CompPassword = "password"
	// CompFullPath is split into path and query.
	CompFullPath = "full_path"
)

// components lists the basic components in validation order.
var components = []string{
	CompScheme,
	CompAuthority,
	CompPath,
	CompQuery,
	CompFragment,
	CompUserinfo,
	CompHost,
	CompPort,
}

var aliases = []string{CompNetloc, CompUsername, CompPassword, CompFullPath}

// Components holds named URL component overrides.
//
// A value is a string or nil. A nil value means the component is absent,
// which is distinct from empty for the query and the fragment.
// The port additionally accepts integer values.
//
// Overrides take precedence over the components parsed from the raw URL.
type Components map[string]any

// IDNAEncoder converts internationalized host names to the ASCII-compatible encoding.
// [*idna.Profile] implements this interface.
type IDNAEncoder interface {
	ToASCII(s string) (string, error)
}

// ParserOptions are used to configure a [Parser].
type ParserOptions struct {
	// Logger is the logger used by the parser.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
	// IDNA is the encoder of internationalized host names.
	// If nil, the [idna.Lookup] profile is used.
	IDNA IDNAEncoder
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

func (o *ParserOptions) idna() IDNAEncoder {
	if o == nil || o.IDNA == nil {
		return idna.Lookup
	}
	return o.IDNA
}

// Parser parses and normalizes URLs.
// It is stateless and safe for concurrent use.
type Parser struct {
	log  *slog.Logger
	idna IDNAEncoder
}

// NewParser creates a new [Parser].
// Options are optional, default options are used if nil (see [ParserOptions]).
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{
		log:  opts.log(),
		idna: opts.idna(),
	}
}

var defParser = NewParser(nil)

// DefaultParser returns the parser used by [Parse].
func DefaultParser() *Parser { return defParser }

func (p *Parser) logger() *slog.Logger {
	if p.log == nil {
		return log.Default()
	}
	return p.log
}

// Parse parses a raw URL string, applies the component overrides and returns the normalized URL.
// See [Parser.Parse].
func Parse(raw string, comps Components) (*ParseResult, error) {
	return errtrace.Wrap2(defParser.Parse(raw, comps))
}

// MustParse is like [Parse] without overrides but panics if the URL can't be parsed.
func MustParse(raw string) *ParseResult {
	return util.Must2(Parse(raw, nil))
}

// Parse parses a raw URL string, applies the component overrides and returns the normalized URL.
//
// Both raw and comps may be empty, comps may be nil.
// Every component supplied in comps replaces the one parsed from raw.
// The returned error is one of [ErrURLTooLong], [ErrInvalidCharacter],
// [ErrInvalidComponentSyntax], [ErrInvalidURL] or [ErrInvalidArgument].
func (p *Parser) Parse(raw string, comps Components) (*ParseResult, error) {
	if p == nil {
		p = defParser
	}
	u, err := p.parse(raw, comps)
	if err != nil {
		p.logger().LogAttrs(context.Background(), slog.LevelDebug, "URL rejected",
			slog.Int("length", len(raw)),
			slog.Int("overrides", len(comps)),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// CopyWith returns a copy of u with the given components replaced.
// If comps is empty, u is returned as is.
// See [ParseResult.CopyWith].
func (p *Parser) CopyWith(u *ParseResult, comps Components) (*ParseResult, error) {
	if p == nil {
		p = defParser
	}
	if len(comps) == 0 {
		return u, nil
	}

	base := Components{
		CompScheme:    u.Scheme(),
		CompAuthority: u.Authority(),
		CompPath:      u.Path(),
		CompQuery:     nil,
		CompFragment:  nil,
	}
	if q, ok := u.Query(); ok {
		base[CompQuery] = q
	}
	if f, ok := u.Fragment(); ok {
		base[CompFragment] = f
	}
	for k, v := range comps {
		base[k] = v
	}
	return errtrace.Wrap2(p.Parse("", base))
}

func (p *Parser) parse(raw string, comps Components) (*ParseResult, error) {
	if err := checkInput("URL", raw); err != nil {
		return nil, errtrace.Wrap(err)
	}

	ovs, err := prepareOverrides(comps)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	parts := grammar.SplitURL(raw)
	scheme := ovs.pick(CompScheme, parts.Scheme)
	authority := ovs.pick(CompAuthority, parts.Authority)
	path := ovs.pick(CompPath, parts.Path)
	query, hasQuery := ovs.pickOpt(CompQuery, parts.Query, parts.HasQuery)
	fragment, hasFragment := ovs.pickOpt(CompFragment, parts.Fragment, parts.HasFragment)

	auth := grammar.SplitAuthority(authority)
	userinfo := ovs.pick(CompUserinfo, auth.Userinfo)
	host := ovs.pick(CompHost, auth.Host)
	port := ovs.pick(CompPort, auth.Port)

	u := &ParseResult{
		scheme:      util.LCase(scheme),
		userinfo:    grammar.Escape(userinfo, userinfoSafe),
		hasQuery:    hasQuery,
		hasFragment: hasFragment,
		parser:      p,
	}
	if u.host, err = p.encodeHost(host); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if u.port, u.hasPort, err = normalizePort(port, u.scheme); err != nil {
		return nil, errtrace.Wrap(err)
	}

	hasAuthority := userinfo != "" || host != "" || port != ""
	if err := validatePath(path, scheme != "", hasAuthority); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hasAuthority {
		path = removeDotSegments(path)
		// a default port alone renders no authority
		if u.Authority() == "" && strings.HasPrefix(path, "//") {
			return nil, errtrace.Wrap(newInvalidURLError("path must not begin with '//' when authority is empty"))
		}
	}
	u.path = grammar.Escape(path, pathSafe)
	if hasQuery {
		u.query = grammar.Escape(query, querySafe)
	}
	if hasFragment {
		u.fragment = grammar.Escape(fragment, querySafe)
	}
	return u, nil
}

// Safe sets of the percent-encoded components in addition to the unreserved characters.
var (
	userinfoSafe = grammar.SubDelims.Add(":")
	regNameSafe  = grammar.SubDelims
	pathSafe     = grammar.SubDelims.Add(":@/")
	querySafe    = grammar.SubDelims.Add("/?")
	// user name and password are escaped before they are joined into userinfo
	credentialSafe = grammar.NewCharSet("/")
)

// checkInput validates the length and the characters of a URL or a single component.
func checkInput(name, s string) error {
	if len(s) > MaxURLLength && utf8.RuneCountInString(s) > MaxURLLength {
		if name == "URL" {
			return errtrace.Wrap(ErrURLTooLong)
		}
		return errtrace.Wrap(errorutil.NewWrapperError(ErrURLTooLong, "component %q", name))
	}
	if i := util.IndexCtl(s); i >= 0 {
		if name == "URL" {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidCharacter, "%q at position %d", s[i], i))
		}
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidCharacter,
			"%q at position %d of component %q", s[i], i, name))
	}
	return nil
}

// override is a component value supplied by the caller, ok is false for nil values.
type override struct {
	val string
	ok  bool
}

type overrides map[string]override

func (ovs overrides) pick(name, parsed string) string {
	if ov, ok := ovs[name]; ok {
		return ov.val
	}
	return parsed
}

func (ovs overrides) pickOpt(name, parsed string, present bool) (string, bool) {
	if ov, ok := ovs[name]; ok {
		return ov.val, ov.ok
	}
	return parsed, present
}

// prepareOverrides converts the caller supplied components into validated basic components.
// Aliases are expanded, a bare IPv6 host is enclosed in brackets.
func prepareOverrides(comps Components) (overrides, error) {
	if len(comps) == 0 {
		return nil, nil
	}

	ovs := make(overrides, len(comps))
	for k, v := range comps {
		if !isKnownComponent(k) {
			return nil, errtrace.Wrap(newInvalidArgumentError("unknown URL component %q", k))
		}

		var ov override
		switch v := v.(type) {
		case nil:
		case string:
			ov = override{v, true}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			if k != CompPort {
				return nil, errtrace.Wrap(newInvalidArgumentError("unsupported value type %T of URL component %q", v, k))
			}
			ov = override{fmt.Sprint(v), true}
		default:
			return nil, errtrace.Wrap(newInvalidArgumentError("unsupported value type %T of URL component %q", v, k))
		}
		if err := checkInput(k, ov.val); err != nil {
			return nil, errtrace.Wrap(err)
		}
		ovs[k] = ov
	}

	if ov, ok := ovs[CompNetloc]; ok {
		delete(ovs, CompNetloc)
		host, port := splitNetloc(ov.val)
		ovs[CompHost] = override{host, true}
		ovs[CompPort] = override{port, true}
	}

	usr, hasUsr := ovs[CompUsername]
	pwd, hasPwd := ovs[CompPassword]
	if hasUsr || hasPwd {
		delete(ovs, CompUsername)
		delete(ovs, CompPassword)
		userinfo := grammar.Escape(usr.val, credentialSafe)
		if pwd.val != "" {
			userinfo += ":" + grammar.Escape(pwd.val, credentialSafe)
		}
		ovs[CompUserinfo] = override{userinfo, true}
	}

	if ov, ok := ovs[CompFullPath]; ok {
		delete(ovs, CompFullPath)
		path, query, hasQuery := strings.Cut(ov.val, "?")
		ovs[CompPath] = override{path, true}
		ovs[CompQuery] = override{query, hasQuery}
	}

	if ov, ok := ovs[CompHost]; ok && strings.Contains(ov.val, ":") && !grammar.IsIPLiteralShaped(ov.val) {
		ovs[CompHost] = override{"[" + ov.val + "]", true}
	}

	for _, k := range components {
		ov, ok := ovs[k]
		if !ok || !ov.ok {
			continue
		}
		if err := checkInput(k, ov.val); err != nil {
			return nil, errtrace.Wrap(err)
		}
		if !grammar.IsComponent(k, ov.val) {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidComponentSyntax, "%q", k))
		}
	}
	return ovs, nil
}

func isKnownComponent(name string) bool {
	for _, k := range components {
		if k == name {
			return true
		}
	}
	for _, k := range aliases {
		if k == name {
			return true
		}
	}
	return false
}

// splitNetloc splits "host:port" on the first colon.
// A bracketed IPv6 host is split after the closing bracket.
func splitNetloc(s string) (host, port string) {
	if strings.HasPrefix(s, "[") {
		if i := strings.LastIndex(s, "]"); i > 0 {
			host, rest := s[:i+1], s[i+1:]
			return host, strings.TrimPrefix(rest, ":")
		}
	}
	host, port, _ = strings.Cut(s, ":")
	return host, port
}
