package handler

import (
	"net/http"

	"Woorigil/config"
	"Woorigil/middleware"
	"Woorigil/pkg/context"
	"Woorigil/pkg/response"
	"Woorigil/service"
	"Woorigil/types"

	"github.com/gin-gonic/gin"
)

type Directions struct {
	Config            *config.Config
	DirectionsService service.IDirectionsService
}

func (h *Directions) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.Group("/v1").GET("/directions", authorize, context.Wrap(h.Route))
}

func (h *Directions) Route(c *gin.Context) error {
	var req types.DirectionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	result, err := h.DirectionsService.Route(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, result)
	return nil
}
