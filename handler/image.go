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

type Image struct {
	Config     *config.Config
	OssService service.IOssService
}

func (h *Image) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)

	imageGroup := r.Group("/v1/images")
	// anonymous uploads are allowed; a valid token just attributes the image
	imageGroup.POST("", middleware.OptionalAuth(secret), context.Wrap(h.Upload))
	imageGroup.GET("/:id", context.Wrap(h.Get))
	imageGroup.DELETE("/:id", middleware.Auth(secret), context.Wrap(h.Delete))
}

func (h *Image) Upload(c *gin.Context) error {
	var owner *int64
	if userID, ok := context.OptionalUserID(c); ok {
		owner = &userID
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest("Validation failed", "image file is required")
	}

	uploaded, err := h.OssService.UploadImage(c.Request.Context(), owner, c.PostForm("purpose"), header)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, uploaded)
	return nil
}

func (h *Image) Get(c *gin.Context) error {
	img, err := h.OssService.GetImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, img)
	return nil
}

func (h *Image) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	if err := h.OssService.DeleteImage(c.Request.Context(), userID, c.Param("id")); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}
