// Package uri parses and normalizes URLs according to RFC 3986.
//
// # Parsing
//
// [Parse] decomposes a raw URL string into components, validates them and returns
// an immutable [ParseResult] holding the canonical form of each component:
//
//	u, err := uri.Parse("HTTP://Example.COM:80/a/./b/../c?q#f", nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(u) // http://example.com/a/c?q#f
//
// The decomposition itself never fails, all rejections come from the validation
// of the individual components. Returned errors match [ErrInvalidURL] with [errors.Is],
// except [ErrInvalidArgument] which reports misuse of the [Components] overrides.
//
// # Normalization
//
// The normalized URL is stable, parsing its string form yields an equal URL:
//
//   - the scheme and the host are lower-cased;
//   - internationalized host names are IDNA-encoded, other host names are percent-encoded;
//   - IPv4 and IPv6 literals are validated, IPv6 zones are not allowed;
//   - the port equal to the default port of the scheme is dropped (see [DefaultPort]);
//   - dot segments are removed from paths of URLs with an authority;
//   - userinfo, path, query and fragment are percent-encoded with uppercase hex digits,
//     existing well-formed escapes are kept as is.
//
// The query and the fragment distinguish absence from emptiness,
// "http://h/?" and "http://h/" are different URLs.
//
// # Overrides
//
// Named components can be supplied alongside the raw string, they replace the parsed ones:
//
//	u, err := uri.Parse("http://example.com/", uri.Components{
//	    uri.CompPath:  "/api",
//	    uri.CompQuery: nil, // drop the query
//	    uri.CompPort:  8080,
//	})
//
// Besides the basic components, the aliases [CompNetloc], [CompUsername],
// [CompPassword] and [CompFullPath] are accepted.
// [ParseResult.CopyWith] re-enters the same pipeline, so a modified copy is validated
// the same way as a freshly parsed URL.
//
// # Concurrency
//
// [Parser] and [ParseResult] are immutable and safe for concurrent use.
package uri
