package core

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse means the LLM answered 2xx but without usable structured content.
var ErrMalformedResponse = errors.New("LLM did not return expected structured content")

// StatusError is a non-2xx reply from the LLM endpoint.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = http.StatusText(e.StatusCode)
	}
	if e.Body == "" {
		return fmt.Sprintf("LLM API HTTP error! status: %d - %s", e.StatusCode, status)
	}
	return fmt.Sprintf("LLM API HTTP error! status: %d - %s: %s", e.StatusCode, status, e.Body)
}

// IsRateLimited reports whether err is an HTTP 429 from the LLM endpoint.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests
}
