package smsapi

import (
	"errors"
	"fmt"
)

var ErrInvalidBaseURL = errors.New("invalid base url")

// StatusError is returned when the server answers outside 2xx.
type StatusError struct {
	Method     string
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: %d", e.Method, e.Endpoint, e.StatusCode)
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
