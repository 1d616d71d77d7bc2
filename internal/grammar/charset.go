package grammar

// CharSet is an immutable set of ASCII bytes.
type CharSet [2]uint64

// NewCharSet returns a set containing every ASCII byte of chars.
func NewCharSet(chars string) CharSet {
	var cs CharSet
	for i := range len(chars) {
		if c := chars[i]; c < 0x80 {
			cs[c>>6] |= 1 << (c & 63)
		}
	}
	return cs
}

// Has reports whether c is in the set.
func (cs CharSet) Has(c byte) bool {
	return c < 0x80 && cs[c>>6]&(1<<(c&63)) != 0
}

// Union returns a new set containing the bytes of cs and all others.
func (cs CharSet) Union(others ...CharSet) CharSet {
	for _, o := range others {
		cs[0] |= o[0]
		cs[1] |= o[1]
	}
	return cs
}

// Add returns a new set containing the bytes of cs and chars.
func (cs CharSet) Add(chars string) CharSet { return cs.Union(NewCharSet(chars)) }

// Character classes from RFC 3986 Section 2.
var (
	// Unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
	Unreserved = NewCharSet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~")
	// SubDelims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
	SubDelims = NewCharSet("!$&'()*+,;=")
)
