package datetime

import "errors"

var (
	ErrInvalidLocale   = errors.New("datetime: invalid locale")
	ErrInvalidOption   = errors.New("datetime: invalid option value")
	ErrInvalidTimeZone = errors.New("datetime: invalid time zone")
)
