package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/utils"
)

// Parse parses a URI or relative-reference from the given input src
// (string or []byte).
//
// Parsing fails atomically: on error no partially populated URI is
// returned. An empty input parses successfully as a relative reference
// with an empty path.
func Parse[T constraints.Byteseq](src T) (*URI, error) {
	s := string(src)
	var u URI

	// Search for the scheme delimiter only before the first slash, so a
	// colon inside authority, path, query or fragment is never mistaken
	// for it.
	rest := s
	limit := strings.IndexByte(s, '/')
	if limit < 0 {
		limit = len(s)
	}
	if i := strings.IndexByte(s[:limit], ':'); i >= 0 {
		if err := checkScheme(s[:i]); err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.scheme = utils.LCase(s[:i])
		rest = s[i+1:]
	}

	authorityAndPath := rest
	var queryAndFragment string
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		authorityAndPath, queryAndFragment = rest[:i], rest[i:]
	}

	pathString := authorityAndPath
	if authority, ok := strings.CutPrefix(authorityAndPath, "//"); ok {
		pathString = ""
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			authority, pathString = authority[:i], authority[i:]
		}
		if err := u.parseAuthority(authority); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	var err error
	if u.path, err = parsePath(pathString); err != nil {
		return nil, errtrace.Wrap(err)
	}

	queryString := queryAndFragment
	if i := strings.IndexByte(queryAndFragment, '#'); i >= 0 {
		queryString = queryAndFragment[:i]
		u.fragment, err = decodeComponent(queryAndFragment[i+1:], grammar.QueryOrFragmentNotPctEncoded, ErrInvalidFragment)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	queryString = strings.TrimPrefix(queryString, "?")
	if u.query, err = decodeComponent(queryString, grammar.QueryOrFragmentNotPctEncoded, ErrInvalidQuery); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &u, nil
}

// checkScheme validates the candidate scheme: non-empty, first
// character alphabetic, the rest in the scheme character set.
func checkScheme(s string) error {
	if s == "" {
		return errtrace.Wrap(newParseError(ErrInvalidScheme, "empty scheme before colon"))
	}
	isFirst := true
	for i := range len(s) {
		set := grammar.SchemeNotFirst
		if isFirst {
			set = grammar.Alpha
		}
		if !set.Contains(s[i]) {
			return errtrace.Wrap(newParseError(ErrInvalidScheme, "illegal character %q", s[i]))
		}
		isFirst = false
	}
	return nil
}

func (u *URI) parseAuthority(authority string) error {
	hostPort := authority
	if i := strings.IndexByte(authority, '@'); i >= 0 {
		userInfo, err := decodeComponent(authority[:i], grammar.UserInfoNotPctEncoded, ErrInvalidUserInfo)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.userInfo = userInfo
		hostPort = authority[i+1:]
	}

	addr, err := parseHostPort(hostPort)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u.addr = addr
	return nil
}

// parsePath splits pathString on slashes and decodes every segment
// against the pchar character set. A path of exactly "/" yields the
// single-element sequence [""], marking an absolute path with no
// segments.
func parsePath(pathString string) ([]string, error) {
	var segments []string
	switch {
	case pathString == "/":
		segments = []string{""}
	case pathString != "":
		segments = strings.Split(pathString, "/")
	}
	for i, seg := range segments {
		dec, err := decodeComponent(seg, grammar.PcharNotPctEncoded, ErrInvalidPath)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		segments[i] = dec
	}
	return segments, nil
}

// decodeComponent validates s against the given character set and
// percent-decodes escape sequences in a single pass.
func decodeComponent(s string, set grammar.CharacterSet, sentinel Error) (string, error) {
	sb := utils.GetStringBuilder()
	defer utils.FreeStringBuilder(sb)

	var (
		dec      grammar.PctDecoder
		inEscape bool
	)
	for i := range len(s) {
		c := s[i]
		if inEscape {
			if !dec.Next(c) {
				return "", errtrace.Wrap(newParseError(sentinel,
					errorutil.NewWrapperError(ErrInvalidEscape, "bad hex digit %q", c)))
			}
			if dec.Done() {
				sb.WriteByte(dec.Decoded())
				inEscape = false
			}
			continue
		}
		switch {
		case c == '%':
			dec = grammar.PctDecoder{}
			inEscape = true
		case set.Contains(c):
			sb.WriteByte(c)
		default:
			return "", errtrace.Wrap(newParseError(sentinel, "illegal character %q", c))
		}
	}
	if inEscape {
		return "", errtrace.Wrap(newParseError(sentinel, errorutil.NewWrapperError(ErrTruncatedEscape)))
	}
	return sb.String(), nil
}

// hostState enumerates the states of the host/port sub-parser.
type hostState int

const (
	hostStart hostState = iota
	hostRegName
	hostEscape
	hostIPLiteral
	hostIPv6
	hostIPvFuture
	hostIPvFutureLast
	hostAfterLiteral
	hostPort
)

// hostParser consumes the host-and-port part of an authority one
// character at a time, with one transition method per state.
type hostParser struct {
	state   hostState
	host    *strings.Builder
	port    *strings.Builder
	dec     grammar.PctDecoder
	literal bool
}

func (p *hostParser) next(c byte) error {
	switch p.state {
	case hostStart:
		return errtrace.Wrap(p.nextStart(c))
	case hostRegName:
		return errtrace.Wrap(p.nextRegName(c))
	case hostEscape:
		return errtrace.Wrap(p.nextEscape(c))
	case hostIPLiteral:
		return errtrace.Wrap(p.nextIPLiteral(c))
	case hostIPv6:
		return errtrace.Wrap(p.nextIPv6(c))
	case hostIPvFuture:
		return errtrace.Wrap(p.nextIPvFuture(c))
	case hostIPvFutureLast:
		return errtrace.Wrap(p.nextIPvFutureLast(c))
	case hostAfterLiteral:
		return errtrace.Wrap(p.nextAfterLiteral(c))
	case hostPort:
		p.port.WriteByte(c)
		return nil
	}
	return nil
}

func (p *hostParser) nextStart(c byte) error {
	if c == '[' {
		p.literal = true
		p.host.WriteByte(c)
		p.state = hostIPLiteral
		return nil
	}
	// Reconsume the character as the first of a reg-name or IPv4 host.
	p.state = hostRegName
	return errtrace.Wrap(p.nextRegName(c))
}

func (p *hostParser) nextRegName(c byte) error {
	switch {
	case c == '%':
		p.dec = grammar.PctDecoder{}
		p.state = hostEscape
	case c == ':':
		p.state = hostPort
	case grammar.RegNameNotPctEncoded.Contains(c):
		p.host.WriteByte(c)
	default:
		return errtrace.Wrap(newParseError(ErrInvalidHost, "illegal character %q", c))
	}
	return nil
}

func (p *hostParser) nextEscape(c byte) error {
	if !p.dec.Next(c) {
		return errtrace.Wrap(newParseError(ErrInvalidHost,
			errorutil.NewWrapperError(ErrInvalidEscape, "bad hex digit %q", c)))
	}
	if p.dec.Done() {
		p.host.WriteByte(p.dec.Decoded())
		p.state = hostRegName
	}
	return nil
}

func (p *hostParser) nextIPLiteral(c byte) error {
	if c == 'v' {
		p.host.WriteByte(c)
		p.state = hostIPvFuture
		return nil
	}
	// Reconsume as the first character of an IPv6 address.
	p.state = hostIPv6
	return errtrace.Wrap(p.nextIPv6(c))
}

func (p *hostParser) nextIPv6(c byte) error {
	// The address internals are an opaque run up to the closing bracket.
	p.host.WriteByte(c)
	if c == ']' {
		p.state = hostAfterLiteral
	}
	return nil
}

func (p *hostParser) nextIPvFuture(c byte) error {
	if c == '.' {
		p.state = hostIPvFutureLast
	} else if !grammar.HexDig.Contains(c) {
		return errtrace.Wrap(newParseError(ErrInvalidHost, "illegal IPvFuture character %q", c))
	}
	p.host.WriteByte(c)
	return nil
}

func (p *hostParser) nextIPvFutureLast(c byte) error {
	p.host.WriteByte(c)
	if c == ']' {
		p.state = hostAfterLiteral
	} else if !grammar.IPvFutureLastPart.Contains(c) {
		return errtrace.Wrap(newParseError(ErrInvalidHost, "illegal IPvFuture character %q", c))
	}
	return nil
}

func (p *hostParser) nextAfterLiteral(c byte) error {
	// After the closing bracket only a port delimiter is legal.
	if c != ':' {
		return errtrace.Wrap(newParseError(ErrInvalidHost, "unexpected character %q after IP-literal", c))
	}
	p.state = hostPort
	return nil
}

func (p *hostParser) finish() error {
	switch p.state {
	case hostEscape:
		return errtrace.Wrap(newParseError(ErrInvalidHost, errorutil.NewWrapperError(ErrTruncatedEscape)))
	case hostIPLiteral, hostIPv6, hostIPvFuture, hostIPvFutureLast:
		return errtrace.Wrap(newParseError(ErrInvalidHost, errorutil.NewWrapperError(ErrUnclosedIPLit)))
	}
	return nil
}

func parseHostPort(s string) (Addr, error) {
	hostBld := utils.GetStringBuilder()
	defer utils.FreeStringBuilder(hostBld)
	portBld := utils.GetStringBuilder()
	defer utils.FreeStringBuilder(portBld)

	p := hostParser{host: hostBld, port: portBld}
	for i := range len(s) {
		if err := p.next(s[i]); err != nil {
			return Addr{}, errtrace.Wrap(err)
		}
	}
	if err := p.finish(); err != nil {
		return Addr{}, errtrace.Wrap(err)
	}

	host := hostBld.String()
	if !p.literal {
		host = utils.LCase(host)
	}

	// A bare trailing colon is legal and means "no port".
	if portBld.Len() == 0 {
		return Host(host), nil
	}
	port, err := strconv.ParseUint(portBld.String(), 10, 16)
	if err != nil {
		return Addr{}, errtrace.Wrap(newParseError(ErrInvalidPort, "%q", portBld.String()))
	}
	return HostPort(host, uint16(port)), nil
}
