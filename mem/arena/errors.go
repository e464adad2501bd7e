package arena

import "errors"

var (
	// ErrBadConfig indicates a Config whose regions do not fit the capacity.
	ErrBadConfig = errors.New("arena: invalid config")

	// ErrMapFailed indicates the backing region could not be mapped.
	ErrMapFailed = errors.New("arena: backing map failed")
)
