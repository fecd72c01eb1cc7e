package function

import "errors"

// ErrNilReader is returned when a function is initialized without a parameter source.
var ErrNilReader = errors.New("parameter reader is required")
