package errors

import "net/http"

var ErrTitleBlank = &Exception{
	Message:    "title cannot be empty",
	StatusCode: http.StatusBadRequest,
}
