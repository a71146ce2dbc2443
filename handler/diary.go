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

type Diary struct {
	Config       *config.Config
	DiaryService service.IDiaryService
}

func (h *Diary) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	diaryGroup := r.Group("/v1/diaries")
	diaryGroup.Use(authorize)
	diaryGroup.POST("", context.Wrap(h.Create))
	diaryGroup.GET("", context.Wrap(h.List))
	diaryGroup.GET("/:id", context.Wrap(h.Get))
	diaryGroup.PATCH("/:id", context.Wrap(h.Update))
	diaryGroup.DELETE("/:id", context.Wrap(h.Delete))
	diaryGroup.POST("/:id/share", context.Wrap(h.Share))
	diaryGroup.POST("/:id/unshare", context.Wrap(h.Unshare))
	diaryGroup.POST("/:id/thumbnail", context.Wrap(h.UploadThumbnail))
}

func (h *Diary) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.CreateDiaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	diary, err := h.DiaryService.Create(c.Request.Context(), userID, req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, diary)
	return nil
}

func (h *Diary) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	diaries, err := h.DiaryService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, diaries)
	return nil
}

func (h *Diary) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Diary not found")
	}

	diary, err := h.DiaryService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, diary)
	return nil
}

func (h *Diary) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Diary not found")
	}

	var req types.UpdateDiaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	diary, err := h.DiaryService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, diary)
	return nil
}

func (h *Diary) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Diary not found")
	}

	if err := h.DiaryService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

func (h *Diary) Share(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Diary not found")
	}

	var req types.ShareDiaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	share, err := h.DiaryService.Share(c.Request.Context(), userID, id, req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, share)
	return nil
}

func (h *Diary) Unshare(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Diary not found")
	}

	var req types.UnshareDiaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	if err := h.DiaryService.Unshare(c.Request.Context(), userID, id, req.UserID); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

func (h *Diary) UploadThumbnail(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Diary not found")
	}

	header, err := c.FormFile("thumbnail")
	if err != nil {
		return response.BadRequest("Validation failed", "thumbnail file is required")
	}

	diary, err := h.DiaryService.UploadThumbnail(c.Request.Context(), userID, id, header)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, diary)
	return nil
}
