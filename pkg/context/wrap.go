package context

import (
	"errors"
	"net/http"

	"Woorigil/pkg/log"
	"Woorigil/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const CtxUserID = "user_id"

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 이미 응답을 쓴 핸들러는 건드리지 않는다
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Err, orNil(be.Msg))
				return
			}
			log.L.Error("unhandled handler error",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError,
				"Internal server error",
				"Something went wrong. Please try again later.")
		}
	}
}

func orNil(msg string) any {
	if msg == "" {
		return nil
	}
	return msg
}

// GetUserID returns the authenticated user id set by the auth middleware.
func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not set")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}

// OptionalUserID returns (0, false) for unauthenticated requests.
func OptionalUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	uid, ok := v.(int64)
	return uid, ok
}
