package uri

import (
	"github.com/ghettovoice/gouri/internal/errorutil"
)

// Error is a string type that implements the error interface.
type Error string

func (e Error) Error() string { return string(e) }

// Parse failure sentinels. Every error returned by [Parse] matches
// [ErrParse] with [errors.Is], plus the sentinel of the component that
// failed; malformed escapes additionally match [ErrInvalidEscape] or
// [ErrTruncatedEscape].
const (
	ErrParse           Error = "malformed URI"
	ErrInvalidScheme   Error = "invalid scheme"
	ErrInvalidUserInfo Error = "invalid user info"
	ErrInvalidHost     Error = "invalid host"
	ErrInvalidPort     Error = "invalid port"
	ErrInvalidPath     Error = "invalid path"
	ErrInvalidQuery    Error = "invalid query"
	ErrInvalidFragment Error = "invalid fragment"
	ErrInvalidEscape   Error = "invalid percent escape"
	ErrTruncatedEscape Error = "truncated percent escape"
	ErrUnclosedIPLit   Error = "unterminated IP-literal"
)

func newParseError(sentinel Error, args ...any) error {
	return errorutil.NewWrapperError(ErrParse, errorutil.NewWrapperError(sentinel, args...)) //errtrace:skip
}
