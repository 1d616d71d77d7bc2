package grammar_test

import (
	"bytes"
	"testing"

	"github.com/ghettovoice/gohttp/internal/grammar"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	pathSafe := grammar.SubDelims.Add(":@/")

	cases := []struct {
		name string
		str  string
		safe grammar.CharSet
		want string
	}{
		{"empty", "", grammar.CharSet{}, ""},
		{"unreserved only", "abc-._~XYZ019", grammar.CharSet{}, "abc-._~XYZ019"},
		{"space", "a b", grammar.CharSet{}, "a%20b"},
		{"sub-delims not safe", "a+b=c", grammar.CharSet{}, "a%2Bb%3Dc"},
		{"sub-delims safe", "a+b=c", grammar.SubDelims, "a+b=c"},
		{"path", "/a b/c:d@e", pathSafe, "/a%20b/c:d@e"},
		{"non-ASCII", "/ä", pathSafe, "/%C3%A4"},
		{"already escaped", "/a%20b%2fc", pathSafe, "/a%20b%2fc"},
		{"stray percent", "100%", grammar.CharSet{}, "100%25"},
		{"stray percent escapes all", "%20 100%", grammar.CharSet{}, "%2520%20100%25"},
		{"short escape", "%4", grammar.CharSet{}, "%254"},
		{"bad hex", "%zz", grammar.CharSet{}, "%25zz"},
		{"control", "a\tb", grammar.CharSet{}, "a%09b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.Escape(c.str, c.safe)
			if got != c.want {
				t.Errorf("grammar.Escape(%q, safe) = %q, want %q", c.str, got, c.want)
			}
			if again := grammar.Escape(got, c.safe); again != got {
				t.Errorf("grammar.Escape(%q, safe) = %q, want it unchanged", got, again)
			}
		})
	}
}

func TestEscape_Bytes(t *testing.T) {
	t.Parallel()

	in := []byte("a b")
	if got, want := grammar.Escape(in, grammar.CharSet{}), []byte("a%20b"); !bytes.Equal(got, want) {
		t.Errorf("grammar.Escape(%q, {}) = %q, want %q", in, got, want)
	}
}

func TestIsEscaped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", true},
		{"abc", true},
		{"%41", true},
		{"%4a%4A/x", true},
		{"%", false},
		{"%4", false},
		{"a%4g", false},
		{"%%41", false},
	}

	for _, c := range cases {
		if got := grammar.IsEscaped(c.str); got != c.want {
			t.Errorf("grammar.IsEscaped(%q) = %v, want %v", c.str, got, c.want)
		}
	}
}

func TestLCaseUnescaped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want string
	}{
		{"", ""},
		{"example.com", "example.com"},
		{"EXAMPLE.Com", "example.com"},
		{"A%7BB%7D", "a%7Bb%7D"},
		{"a%7bb", "a%7bb"},
		{"%ZZ%4", "%zz%4"},
		{"X%2", "x%2"},
	}

	for _, c := range cases {
		if got := grammar.LCaseUnescaped(c.str); got != c.want {
			t.Errorf("grammar.LCaseUnescaped(%q) = %q, want %q", c.str, got, c.want)
		}
		esc := grammar.Escape(c.str, grammar.SubDelims)
		if once := grammar.LCaseUnescaped(esc); grammar.LCaseUnescaped(grammar.Escape(once, grammar.SubDelims)) != once {
			t.Errorf("grammar.LCaseUnescaped(grammar.Escape(%q)) is not stable", c.str)
		}
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no unescape", "abc%ax%", "abc%ax%"},
		{"unescape all", "abc%E4%b8%96", "abc世"},
		{"mixed", "us%3Aer%", "us:er%"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestCharSet(t *testing.T) {
	t.Parallel()

	cs := grammar.NewCharSet("ab").Add("/").Union(grammar.SubDelims)
	for _, c := range []byte("ab/!$&'()*+,;=") {
		if !cs.Has(c) {
			t.Errorf("cs.Has(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{'c', '%', 0, 0x7f, 0x80, 0xff} {
		if cs.Has(c) {
			t.Errorf("cs.Has(%q) = true, want false", c)
		}
	}
	if !grammar.Unreserved.Has('~') || grammar.Unreserved.Has('!') {
		t.Error("unexpected unreserved class")
	}
}

func BenchmarkEscape(b *testing.B) {
	safe := grammar.SubDelims.Add(":@/")
	cases := []struct {
		name    string
		in, out string
	}{
		{"clean", "/path/to/resource", "/path/to/resource"},
		{"dirty", "/päth with spaces/", "/p%C3%A4th%20with%20spaces/"},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			for b.Loop() {
				if got := grammar.Escape(c.in, safe); got != c.out {
					b.Errorf("grammar.Escape(%q, safe) = %q, want %q", c.in, got, c.out)
				}
			}
		})
	}
}
