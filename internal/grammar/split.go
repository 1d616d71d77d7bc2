// Package grammar implements the RFC 3986 syntax layer: total decomposition of
// a URL string into its components and percent-encoding of component text.
package grammar

import "regexp"

// The top-level pattern matches every input, components may be empty or missing.
//
//	{scheme}:      (optional)
//	//{authority}  (optional)
//	{path}
//	?{query}       (optional)
//	#{fragment}    (optional)
var urlRE = regexp.MustCompile(
	`(?s)^(?:(` + schemePtn + `):)?` +
		`(?://(` + authorityPtn + `))?` +
		`(` + pathPtn + `)` +
		`(?:\?(` + queryPtn + `))?` +
		`(?:#(` + fragmentPtn + `))?`,
)

//	{userinfo}@    (optional)
//	{host}
//	:{port}        (optional)
var authorityRE = regexp.MustCompile(
	`(?s)^(?:(` + userinfoPtn + `)@)?(` + hostPtn + `):?(` + portPtn + `)?`,
)

const (
	schemePtn    = `[a-zA-Z][a-zA-Z0-9+.-]*`
	authorityPtn = `[^/?#]*`
	pathPtn      = `[^?#]*`
	queryPtn     = `[^#]*`
	fragmentPtn  = `.*`
	userinfoPtn  = `[^@]*`
	hostPtn      = `\[.*\]|[^:]*`
	portPtn      = `.*`
)

// Standalone grammars of the individual components, anchored as full matches.
var componentREs = map[string]*regexp.Regexp{
	"scheme":    fullMatch(`(?:` + schemePtn + `)?`),
	"authority": fullMatch(authorityPtn),
	"path":      fullMatch(pathPtn),
	"query":     fullMatch(queryPtn),
	"fragment":  fullMatch(fragmentPtn),
	"userinfo":  fullMatch(userinfoPtn),
	"host":      fullMatch(hostPtn),
	"port":      fullMatch(portPtn),
}

func fullMatch(ptn string) *regexp.Regexp { return regexp.MustCompile(`(?s)^(?:` + ptn + `)$`) }

// URLParts holds the top-level syntactic groups of a URL.
// Query and fragment carry a presence flag, an empty value with the flag set
// means a bare trailing "?" or "#".
type URLParts struct {
	Scheme, Authority, Path string
	Query, Fragment         string
	HasQuery, HasFragment   bool
}

// SplitURL breaks s into the top-level groups. It never fails.
func SplitURL(s string) URLParts {
	m := urlRE.FindStringSubmatchIndex(s)
	var p URLParts
	p.Scheme, _ = group(s, m, 1)
	p.Authority, _ = group(s, m, 2)
	p.Path, _ = group(s, m, 3)
	p.Query, p.HasQuery = group(s, m, 4)
	p.Fragment, p.HasFragment = group(s, m, 5)
	return p
}

// AuthorityParts holds the sub-groups of an authority.
type AuthorityParts struct {
	Userinfo, Host, Port string
}

// SplitAuthority breaks an authority into userinfo, host and port. It never fails.
// A bracketed host is returned together with its brackets.
func SplitAuthority(s string) AuthorityParts {
	m := authorityRE.FindStringSubmatchIndex(s)
	var p AuthorityParts
	p.Userinfo, _ = group(s, m, 1)
	p.Host, _ = group(s, m, 2)
	p.Port, _ = group(s, m, 3)
	return p
}

func group(s string, m []int, i int) (string, bool) {
	if len(m) < 2*i+2 || m[2*i] < 0 {
		return "", false
	}
	return s[m[2*i]:m[2*i+1]], true
}

// IsComponent reports whether s fully matches the standalone grammar of the named component.
// Unknown component names never match.
func IsComponent(name, s string) bool {
	re, ok := componentREs[name]
	return ok && re.MatchString(s)
}

var (
	ipv4ShapeRE = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+\.[0-9]+$`)
	ipv6ShapeRE = regexp.MustCompile(`(?s)^\[.*\]$`)
)

// IsIPv4Shaped reports whether host looks like a dotted-quad.
// It's a shape probe only, octet values are validated by the caller.
func IsIPv4Shaped(host string) bool { return ipv4ShapeRE.MatchString(host) }

// IsIPLiteralShaped reports whether host is enclosed in square brackets.
func IsIPLiteralShaped(host string) bool { return ipv6ShapeRE.MatchString(host) }
