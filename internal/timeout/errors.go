package timeout

import "errors"

// ErrReadTimeout is reported when no data was read within the timeout.
var ErrReadTimeout = errors.New("timeout: read timed out")
