// Package uri implements parsing and normalization of URI references
// according to the generic syntax of RFC 3986.
//
// [Parse] decomposes a URI or relative-reference string into its
// components (scheme, user-info, host, port, path segments, query,
// fragment), validates every component against its grammar and
// percent-decodes escaped octets where the grammar permits them:
//
//	u, err := uri.Parse("http://joe@www.example.com:8080/foo/bar?q#f")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u.Scheme() // "http"
//	u.Host()   // "www.example.com"
//	u.Path()   // []string{"", "foo", "bar"}
//
// The path is represented as an ordered sequence of decoded segments:
// a leading empty segment means the path is absolute, a trailing empty
// segment means the path ends with a slash.
//
// # Normalization and equivalence
//
// [URI.NormalizePath] removes dot segments in place per RFC 3986
// section 5.2.4. It is not applied implicitly: to test
// section 6.2.2 style equivalence, normalize both sides first and then
// compare with [URI.Equal]:
//
//	u1, _ := uri.Parse("example://a/b/c/%7Bfoo%7D")
//	u2, _ := uri.Parse("eXAMPLE://a/./b/../b/%63/%7bfoo%7d")
//	u2.NormalizePath()
//	u1.Equal(u2) // true
//
// # Scope
//
// The package parses; it does not recompose a URI back to a string,
// resolve relative references against a base, or perform any network
// I/O. IPv6 literal internals and IPv4 dotted-quad octet ranges are not
// validated: a bracketed host is an opaque character run up to the
// closing bracket, and a dotted address rides the reg-name character
// set. Callers relying on strict address validation should check the
// host themselves, e.g. with [net.ParseIP].
//
// # Thread safety
//
// Parsing never mutates shared state, so any number of parses may run
// concurrently. A parsed *URI is an immutable value except for
// [URI.NormalizePath], which must not race with readers of the same
// value.
package uri
