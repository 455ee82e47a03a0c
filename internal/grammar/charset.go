// Package grammar implements the RFC 3986 character classes and the
// percent-escape decoder used by the URI parser.
package grammar

// CharacterSet is an immutable predicate over single characters, backed by a
// list of inclusive byte ranges. Sets are correct by construction and safe
// for concurrent reads.
type CharacterSet struct {
	ranges []charRange
}

type charRange struct {
	lo, hi byte
}

// Range returns a set containing every character from lo to hi inclusive.
func Range(lo, hi byte) CharacterSet {
	return CharacterSet{ranges: []charRange{{lo, hi}}}
}

// Char returns a set containing the single character c.
func Char(c byte) CharacterSet {
	return Range(c, c)
}

// Chars returns a set containing exactly the given characters.
func Chars(cs ...byte) CharacterSet {
	set := CharacterSet{ranges: make([]charRange, 0, len(cs))}
	for _, c := range cs {
		set.ranges = append(set.ranges, charRange{c, c})
	}
	return set
}

// Union returns a set combining the ranges of all given sets.
func Union(sets ...CharacterSet) CharacterSet {
	var n int
	for _, s := range sets {
		n += len(s.ranges)
	}
	set := CharacterSet{ranges: make([]charRange, 0, n)}
	for _, s := range sets {
		set.ranges = append(set.ranges, s.ranges...)
	}
	return set
}

// Contains reports whether c belongs to the set.
func (set CharacterSet) Contains(c byte) bool {
	for _, r := range set.ranges {
		if r.lo <= c && c <= r.hi {
			return true
		}
	}
	return false
}

// Static character sets, one per RFC 3986 grammar production, each leaving
// out the pct-encoded alternative where the production has one.
var (
	// Alpha is the ALPHA rule.
	Alpha = Union(Range('a', 'z'), Range('A', 'Z'))

	// Digit is the DIGIT rule.
	Digit = Range('0', '9')

	// HexDig is the HEXDIG rule, extended with lower-case digits.
	HexDig = Union(Digit, Range('A', 'F'), Range('a', 'f'))

	// Unreserved is the unreserved rule.
	Unreserved = Union(Alpha, Digit, Chars('-', '.', '_', '~'))

	// SubDelims is the sub-delims rule.
	SubDelims = Chars('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')

	// SchemeNotFirst covers every scheme character after the first one.
	SchemeNotFirst = Union(Alpha, Digit, Chars('+', '-', '.'))

	// PcharNotPctEncoded is the pchar rule minus pct-encoded.
	PcharNotPctEncoded = Union(Unreserved, SubDelims, Chars(':', '@'))

	// QueryOrFragmentNotPctEncoded is the query and fragment rules minus
	// pct-encoded.
	QueryOrFragmentNotPctEncoded = Union(PcharNotPctEncoded, Chars('/', '?'))

	// UserInfoNotPctEncoded is the userinfo rule minus pct-encoded.
	UserInfoNotPctEncoded = Union(Unreserved, SubDelims, Char(':'))

	// RegNameNotPctEncoded is the reg-name rule minus pct-encoded.
	RegNameNotPctEncoded = Union(Unreserved, SubDelims)

	// IPvFutureLastPart covers the last part of the IPvFuture rule.
	IPvFutureLastPart = Union(Unreserved, SubDelims, Char(':'))
)
