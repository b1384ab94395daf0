package messageformat

import "errors"

var (
	ErrSyntax        = errors.New("messageformat: syntax error")
	ErrMissingOther  = errors.New("messageformat: missing 'other' option")
	ErrMissingValue  = errors.New("messageformat: missing value")
	ErrInvalidValue  = errors.New("messageformat: invalid value")
	ErrInvalidLocale = errors.New("messageformat: invalid locale")
)
