package api

import "errors"

// RemoteError is a domain-level failure: the request itself went through,
// but the backend answered with an error field in the body. The message is
// the backend's own text and is shown to the user verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// IsRemote reports whether err is a domain error reported by the backend,
// as opposed to a transport failure.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
