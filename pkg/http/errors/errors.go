package errors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// New builds the error body for status.
func New(status int) ErrorResponse {
	return ErrorResponse{Success: false, Error: status, Message: Message(status)}
}

// Abort stops the handler chain and writes the error body for status.
func Abort(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, New(status))
}

// AbortWithError records err on the context for the request logger, then
// aborts with status. The cause never reaches the client.
func AbortWithError(c *gin.Context, status int, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	Abort(c, status)
}
