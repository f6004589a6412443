package manager

import "errors"

// ErrToolFailure is returned when a query command exits non-zero.
var ErrToolFailure = errors.New("server manager command failed")
