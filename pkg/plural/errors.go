package plural

import "errors"

var (
	ErrInvalidLocale = errors.New("plural: invalid locale")
	ErrInvalidStyle  = errors.New("plural: invalid style")
	ErrInvalidNumber = errors.New("plural: invalid number")
)
