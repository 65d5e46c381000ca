package api

import "errors"

// Failure kinds. Every gateway failure is classified into exactly one of
// these; callers branch with errors.Is and must never inspect raw transport
// detail.
var (
	// ErrUnavailable: no response was received (connection, DNS, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrAuthRequired: the session credential is absent, expired or the
	// login credentials were rejected.
	ErrAuthRequired = errors.New("authentication required")

	// ErrValidation: the server rejected the request (4xx other than 401).
	ErrValidation = errors.New("validation failed")

	// ErrServerFault: the server failed to process the request (5xx).
	ErrServerFault = errors.New("server error")
)

// Error couples a failure kind with the human-readable message extracted
// from the response payload, or a generic fallback when none was present.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

// Message returns the user-facing text for any error coming out of the
// gateway. It is the single source for UI error banners.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
