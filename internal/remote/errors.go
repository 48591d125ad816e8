package remote

import "fmt"

// TransportError reports that a call to the notifier service could not
// complete at all (connectivity, DNS, timeout). The cache is never touched
// when one is returned.
type TransportError struct {
	Op  string // operation being performed, e.g. "create"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports that the notifier service responded with a non-success
// status. Message carries the error the service returned in its body when
// it sent one, otherwise a generic message with the status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
