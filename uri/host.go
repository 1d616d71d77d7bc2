package uri

import (
	"fmt"
	"net/netip"

	"braces.dev/errtrace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/util"
)

// hostKind is the syntactic family of a raw host.
type hostKind uint8

const (
	hostEmpty hostKind = iota
	hostIPv4
	hostIPv6
	hostRegName
	hostIDN
)

func (k hostKind) String() string {
	switch k {
	case hostEmpty:
		return "empty"
	case hostIPv4:
		return "IPv4"
	case hostIPv6:
		return "IPv6"
	case hostRegName:
		return "reg-name"
	case hostIDN:
		return "IDN"
	default:
		return "unknown"
	}
}

func classifyHost(host string) hostKind {
	switch {
	case host == "":
		return hostEmpty
	case grammar.IsIPLiteralShaped(host):
		return hostIPv6
	case grammar.IsIPv4Shaped(host):
		return hostIPv4
	case util.IsASCII(host):
		return hostRegName
	default:
		return hostIDN
	}
}

// encodeHost normalizes the raw host according to its family.
// The bracketed IPv6 literal is returned without brackets.
func (p *Parser) encodeHost(host string) (string, error) {
	switch kind := classifyHost(host); kind {
	case hostEmpty:
		return "", nil
	case hostIPv4:
		if addr, err := netip.ParseAddr(host); err != nil || !addr.Is4() {
			return "", errtrace.Wrap(newInvalidURLError("invalid IPv4 address %q", host))
		}
		return host, nil
	case hostIPv6:
		lit := host[1 : len(host)-1]
		if addr, err := netip.ParseAddr(lit); err != nil || !addr.Is6() || addr.Zone() != "" {
			return "", errtrace.Wrap(newInvalidURLError("invalid IPv6 address %q", host))
		}
		return lit, nil
	case hostRegName:
		// escapes keep their hex case
		return grammar.LCaseUnescaped(grammar.Escape(host, regNameSafe)), nil
	case hostIDN:
		// cases.Caser keeps state, a new one per call
		enc, err := p.idna.ToASCII(cases.Lower(language.Und).String(host))
		if err != nil {
			return "", errtrace.Wrap(newInvalidURLError("invalid IDNA hostname %q: %v", host, err))
		}
		if enc == "" || !util.IsASCII(enc) {
			return "", errtrace.Wrap(newInvalidURLError("invalid IDNA hostname %q", host))
		}
		// the mapping may produce an IPv4 address, the result must parse back to itself
		return errtrace.Wrap2(p.encodeHost(enc))
	default:
		panic(fmt.Sprintf("unexpected host kind %s", kind))
	}
}
