package errors

import "net/http"

var ErrNoData = &Exception{
	Message:    "no data provided",
	StatusCode: http.StatusBadRequest,
}
