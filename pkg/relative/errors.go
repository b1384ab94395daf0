package relative

import "errors"

var (
	ErrInvalidLocale = errors.New("relative: invalid locale")
	ErrInvalidStyle  = errors.New("relative: invalid style")
	ErrInvalidUnits  = errors.New("relative: invalid units")
)
