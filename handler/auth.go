package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"Woorigil/config"
	"Woorigil/pkg/context"
	"Woorigil/pkg/response"
	"Woorigil/service"
	"Woorigil/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authGroup := r.Group("/auth")
	authGroup.GET("/kakao/callback", context.Wrap(h.KakaoCallback))
	authGroup.POST("/google", context.Wrap(h.GoogleLogin))
}

// KakaoCallback completes the OAuth dance and hands the session token to the
// frontend via redirect.
func (h *Auth) KakaoCallback(c *gin.Context) error {
	code := c.Query("code")
	if code == "" {
		return response.BadRequest("Validation failed", "code is required")
	}

	login, err := h.AuthService.KakaoLogin(c.Request.Context(), code)
	if err != nil {
		return err
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s",
		h.Config.App.FrontendURL, url.QueryEscape(login.Token))
	c.Redirect(http.StatusFound, redirect)
	return nil
}

func (h *Auth) GoogleLogin(c *gin.Context) error {
	var req types.GoogleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	login, err := h.AuthService.GoogleLogin(c.Request.Context(), req.IDToken)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, login)
	return nil
}
