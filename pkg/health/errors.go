package health

import "errors"

var (
	ErrCheckFailed  = errors.New("health: check failed")
	ErrCheckTimeout = errors.New("health: check timeout")
	ErrStaleCatalog = errors.New("health: catalog is stale")
)
