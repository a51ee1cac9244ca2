package gateway

import "errors"

var (
	// ErrUnauthorized means the server rejected the submitted credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means no record matched the requested id.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable covers transport failures, timeouts and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
	// ErrSessionExpired means a call received a 401-equivalent response;
	// the persisted session has already been torn down when it is returned.
	ErrSessionExpired = errors.New("session expired")
)
