package dadosbr

import "errors"

// ErrInvalidArgument is wrapped by every error caused by a missing or unrecognized
// argument. Such errors are always returned before any network call.
var ErrInvalidArgument = errors.New("invalid argument")
