package uri

//go:generate go tool errtrace -w .

import (
	"slices"
	"strconv"
)

// URI is a parsed URI reference.
//
// A URI value is fully constructed and validated by a single [Parse]
// call and is immutable afterwards, except for [URI.NormalizePath]
// which rewrites the path segment sequence in place.
type URI struct {
	scheme   string
	userInfo string
	addr     Addr
	path     []string
	query    string
	fragment string
}

// Scheme returns the scheme of the URI, lower-cased, or an empty string
// for a relative reference.
func (u *URI) Scheme() string { return u.scheme }

// UserInfo returns the decoded user-info component, or an empty string
// if the URI has none.
func (u *URI) UserInfo() string { return u.userInfo }

// Host returns the host component: a reg-name or IPv4-shaped host is
// decoded and lower-cased, an IP-literal is kept verbatim including its
// brackets. The contents of an IP-literal and the octets of a dotted
// IPv4 address are not validated.
func (u *URI) Host() string { return u.addr.host }

// Port returns the port, in case it is set, and bool flag indicating
// whether it is set.
func (u *URI) Port() (uint16, bool) { return u.addr.Port() }

// Addr returns the host and optional port as an [Addr].
func (u *URI) Addr() Addr { return u.addr }

// Path returns a copy of the path as an ordered sequence of decoded
// segments. A leading empty segment means the path is absolute; a
// trailing empty segment means the path ends with a slash.
func (u *URI) Path() []string { return slices.Clone(u.path) }

// Query returns the decoded query component. A URI without a query and
// a URI with an empty query both return an empty string.
func (u *URI) Query() string { return u.query }

// Fragment returns the decoded fragment component. A URI without a
// fragment and a URI with an empty fragment both return an empty string.
func (u *URI) Fragment() string { return u.fragment }

// IsRelativeReference reports whether the URI is a relative reference,
// that is, has no scheme.
func (u *URI) IsRelativeReference() bool { return u.scheme == "" }

// ContainsRelativePath reports whether the path of the URI is relative:
// either empty or not beginning with a slash.
func (u *URI) ContainsRelativePath() bool {
	return len(u.path) == 0 || u.path[0] != ""
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.path = slices.Clone(u.path)
	return &u2
}

// Equal reports whether the URI equals the provided value, accepting
// URI and *URI. All components are compared by value, the path
// element-wise. Paths are not normalized implicitly: call
// [URI.NormalizePath] on both sides first to test equivalence of
// references that differ only in dot segments.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
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
		u.userInfo == other.userInfo &&
		u.addr.Equal(other.addr) &&
		slices.Equal(u.path, other.path) &&
		u.query == other.query &&
		u.fragment == other.fragment
}

// Addr is a container for host and optional port.
type Addr struct {
	host    string
	port    uint16
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	return Addr{host: host}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint16) Addr {
	return Addr{host: host, port: port, hasPort: true}
}

// Host returns the hostname portion of the address.
func (addr Addr) Host() string { return addr.host }

// Port returns the port, in case it is set, and bool flag indicating
// whether it is set.
func (addr Addr) Port() (uint16, bool) { return addr.port, addr.hasPort }

// IsZero reports whether the address has zero host and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && !addr.hasPort }

// String formats the address as host[:port] for diagnostics. An
// IP-literal host already carries its brackets.
func (addr Addr) String() string {
	if !addr.hasPort {
		return addr.host
	}
	return addr.host + ":" + strconv.Itoa(int(addr.port))
}

// Equal reports whether the address equals the provided value,
// accepting Addr and *Addr.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return addr.host == other.host && addr.port == other.port && addr.hasPort == other.hasPort
}
