package entity

import "errors"

// RemoteError is a decodable failure reported by the remote object-management
// service. Name is the remote error identifier used for outcome translation;
// Message is diagnostic detail for operator-facing logs only.
type RemoteError struct {
	Name    string
	Message string
}

// Error -.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Name
	}

	return e.Name + ": " + e.Message
}

// AsRemoteError unwraps err into a RemoteError when the failure carried a
// decodable error payload.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}

	return nil, false
}
