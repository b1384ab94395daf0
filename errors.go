package intl

import "errors"

var (
	ErrMissingMessageID = errors.New("intl: message descriptor has no id")
	ErrMissingMessage   = errors.New("intl: missing message")
	ErrInvalidDate      = errors.New("intl: invalid date")
	ErrInvalidNumber    = errors.New("intl: invalid number")
	ErrUnknownFormat    = errors.New("intl: unknown named format")
)
