package matchsvc

import "fmt"

// TransportError means the service could not be reached at all
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("matching service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError means the service answered with a non-success status
// or an unreadable body. Snippet carries the truncated raw body.
type ServiceError struct {
	StatusCode int
	Snippet    string
}

func (e *ServiceError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("matching service error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("matching service error: status %d: %s", e.StatusCode, e.Snippet)
}
