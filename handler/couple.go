package handler

import (
	"net/http"

	"Woorigil/config"
	"Woorigil/middleware"
	"Woorigil/pkg/context"
	"Woorigil/pkg/response"
	"Woorigil/service"

	"github.com/gin-gonic/gin"
)

type Couple struct {
	Config        *config.Config
	CoupleService service.ICoupleService
}

func (h *Couple) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	coupleGroup := r.Group("/v1/couple")
	coupleGroup.Use(authorize)
	coupleGroup.GET("", context.Wrap(h.Get))
	coupleGroup.DELETE("", context.Wrap(h.Delete))

	invitationGroup := r.Group("/v1/couple_invitations")
	invitationGroup.Use(authorize)
	invitationGroup.POST("", context.Wrap(h.CreateInvitation))
	invitationGroup.POST("/:token/accept", context.Wrap(h.AcceptInvitation))
}

func (h *Couple) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	couple, err := h.CoupleService.Get(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, couple)
	return nil
}

func (h *Couple) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	if err := h.CoupleService.Delete(c.Request.Context(), userID); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

func (h *Couple) CreateInvitation(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	inv, err := h.CoupleService.CreateInvitation(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, inv)
	return nil
}

func (h *Couple) AcceptInvitation(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	couple, err := h.CoupleService.AcceptInvitation(c.Request.Context(), userID, c.Param("token"))
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, couple)
	return nil
}
