package disposable

import "errors"

var (
	ErrInvalidFormat = errors.New("disposable: invalid domain list format")
	ErrReadFile      = errors.New("disposable: failed to read domain list")
)
