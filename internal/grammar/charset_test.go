package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestCharacterSet_Contains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  grammar.CharacterSet
		in   string
		out  string
	}{
		{"range", grammar.Range('a', 'z'), "amz", "A0 `{"},
		{"char", grammar.Char('/'), "/", ".0"},
		{"chars", grammar.Chars('!', '$', '&'), "!$&", "%\" "},
		{
			"union",
			grammar.Union(grammar.Range('a', 'f'), grammar.Char('-'), grammar.Chars('_', '~')),
			"abf-_~",
			"gA.0",
		},
		{"empty", grammar.CharacterSet{}, "", "a0-. "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for i := range len(c.in) {
				if !c.set.Contains(c.in[i]) {
					t.Errorf("set.Contains(%q) = false, want true", c.in[i])
				}
			}
			for i := range len(c.out) {
				if c.set.Contains(c.out[i]) {
					t.Errorf("set.Contains(%q) = true, want false", c.out[i])
				}
			}
		})
	}
}

func TestStaticSets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  grammar.CharacterSet
		in   string
		out  string
	}{
		{"alpha", grammar.Alpha, "azAZmQ", "09 -_%"},
		{"digit", grammar.Digit, "09", "aA/:"},
		{"hexdig", grammar.HexDig, "09afAF", "gGxz%"},
		{"unreserved", grammar.Unreserved, "azAZ09-._~", "!$&:@/?%[]"},
		{"sub-delims", grammar.SubDelims, "!$&'()*+,;=", "azAZ09:@/?%"},
		{"scheme not first", grammar.SchemeNotFirst, "azAZ09+-.", ":/?#~_"},
		{"pchar", grammar.PcharNotPctEncoded, "azAZ09-._~!$&'()*+,;=:@", "/?#[]%"},
		{"query or fragment", grammar.QueryOrFragmentNotPctEncoded, "azAZ09:@/?!$", "#[]%"},
		{"user info", grammar.UserInfoNotPctEncoded, "azAZ09:!$&'", "@/?#[]%"},
		{"reg-name", grammar.RegNameNotPctEncoded, "azAZ09-._~!$&", ":@/?#[]%"},
		{"ipvfuture last part", grammar.IPvFutureLastPart, "azAZ09:!$", "@/?#[]%"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for i := range len(c.in) {
				if !c.set.Contains(c.in[i]) {
					t.Errorf("%s.Contains(%q) = false, want true", c.name, c.in[i])
				}
			}
			for i := range len(c.out) {
				if c.set.Contains(c.out[i]) {
					t.Errorf("%s.Contains(%q) = true, want false", c.name, c.out[i])
				}
			}
		})
	}
}
