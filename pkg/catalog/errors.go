package catalog

import "errors"

var (
	ErrInvalidLocale     = errors.New("catalog: invalid locale")
	ErrInvalidFile       = errors.New("catalog: invalid catalog file")
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")
	ErrInvalidSchedule   = errors.New("catalog: invalid reload schedule")
	ErrNotFound          = errors.New("catalog: source not found")
	ErrAccessDenied      = errors.New("catalog: source access denied")
	ErrLoadFailed        = errors.New("catalog: failed to load messages")
)
