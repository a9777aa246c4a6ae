package flip

import "errors"

// ErrInvalidConfiguration reports a cycle that cannot be started,
// such as one over an empty word list.
var ErrInvalidConfiguration = errors.New("flip: invalid configuration")
