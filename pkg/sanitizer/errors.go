package sanitizer

import "errors"

var ErrUnknownPolicy = errors.New("sanitizer: unknown policy")
