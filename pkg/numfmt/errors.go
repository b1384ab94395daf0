package numfmt

import "errors"

var (
	ErrInvalidLocale   = errors.New("numfmt: invalid locale")
	ErrInvalidStyle    = errors.New("numfmt: invalid style")
	ErrInvalidCurrency = errors.New("numfmt: invalid currency code")
	ErrMissingCurrency = errors.New("numfmt: currency code is required with currency style")
	ErrInvalidDisplay  = errors.New("numfmt: invalid currency display")
	ErrOutOfRange      = errors.New("numfmt: digit option out of range")
)
