package errors

import (
	"net/http"
	"strings"
)

// Messages used in error bodies. Clients match on these strings.
const (
	MsgBadRequest          = "bad request"
	MsgNotFound            = "resource not found"
	MsgMethodNotAllowed    = "method not allowed"
	MsgUnprocessable       = "unprocessable"
	MsgInternalServerError = "internal server error"
)

var messages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusInternalServerError: MsgInternalServerError,
}

// Message returns the body message for a status. Statuses without a fixed
// message fall back to the lowercased status text.
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return strings.ToLower(http.StatusText(status))
}
