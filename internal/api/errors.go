package api

import "fmt"

// Error is the single failure kind surfaced by the client. It covers
// transport failures (network unreachable, non-2xx status), application
// errors (an error field in an otherwise-successful response), and decode
// failures. The caller decides whether to alert the user or abort a
// multi-step operation.
type Error struct {
	// Op is the logical operation that failed, e.g. "list contacts".
	Op string

	// StatusCode is the HTTP status, or 0 when the request never
	// completed.
	StatusCode int

	// Message is the application error message or raw response body.
	Message string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
