package health

import "errors"

// ErrCheckTimeout marks a check that did not finish within the shared timeout.
var ErrCheckTimeout = errors.New("health: check timeout")
