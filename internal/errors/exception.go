package errors

import (
	"errors"
	"net/http"
)

// Exception is an error the API layer may expose to clients: a stable
// message plus the HTTP status code it maps to. Anything that is not an
// Exception is treated as an internal fault.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
