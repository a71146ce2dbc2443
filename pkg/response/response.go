package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every failed response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message any    `json:"message,omitempty"`
}

// Success writes a resource-shaped body as-is. Clients consume camelCase
// fields, so data structs keep their own json tags.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Fail(c *gin.Context, status int, err string, msg any) {
	c.JSON(status, ErrorBody{Error: err, Message: msg})
}
