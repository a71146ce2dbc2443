package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError carries the HTTP status a failed operation maps to, a short
// machine-readable label and an optional human message.
type BizError struct {
	Code int
	Err  string
	Msg  string
}

func (e *BizError) Error() string {
	if e.Msg != "" {
		return e.Err + ": " + e.Msg
	}
	return e.Err
}

func NewError(code int, err string, msg string) *BizError {
	return &BizError{Code: code, Err: err, Msg: msg}
}

func BadRequest(err string, msg string) *BizError {
	return NewError(http.StatusBadRequest, err, msg)
}

func Unauthorized() *BizError {
	return NewError(http.StatusUnauthorized, "Unauthorized", "")
}

func Forbidden(err string, msg string) *BizError {
	return NewError(http.StatusForbidden, err, msg)
}

func NotFound(err string) *BizError {
	return NewError(http.StatusNotFound, err, "")
}

func Unprocessable(err string, msg string) *BizError {
	return NewError(http.StatusUnprocessableEntity, err, msg)
}

func Abort(c *gin.Context, httpStatus int, err string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: err})
}
