package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Woorigil/config"
	"Woorigil/middleware"
	"Woorigil/pkg/context"
	"Woorigil/pkg/response"
	"Woorigil/service"
	"Woorigil/types"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

type Folder struct {
	Config        *config.Config
	FolderService service.IFolderService
}

func (h *Folder) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	folderGroup := r.Group("/v1/folders")
	folderGroup.Use(authorize)
	folderGroup.POST("", context.Wrap(h.Create))
	folderGroup.GET("", context.Wrap(h.ListTree))
	folderGroup.GET("/flat", context.Wrap(h.ListFlat))
	folderGroup.GET("/:id", context.Wrap(h.Get))
	folderGroup.PATCH("/:id", context.Wrap(h.Update))
	folderGroup.DELETE("/:id", context.Wrap(h.Delete))
	folderGroup.GET("/:id/children", context.Wrap(h.Children))
}

func (h *Folder) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.CreateFolderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	folder, err := h.FolderService.Create(c.Request.Context(), userID, req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, folder)
	return nil
}

func (h *Folder) ListTree(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	tree, err := h.FolderService.ListTree(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, tree)
	return nil
}

func (h *Folder) ListFlat(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	flat, err := h.FolderService.ListFlat(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, flat)
	return nil
}

func (h *Folder) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Folder not found")
	}

	folder, err := h.FolderService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, folder)
	return nil
}

// Update reads the raw body so an explicit "parentId": null (move back to
// root) is distinguishable from an absent field.
func (h *Folder) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Folder not found")
	}

	body, err := c.GetRawData()
	if err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}
	var req types.UpdateFolderReq
	if err := json.Unmarshal(body, &req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}
	parentField := gjson.GetBytes(body, "parentId")
	clearParent := parentField.Exists() && parentField.Type == gjson.Null

	folder, err := h.FolderService.Update(c.Request.Context(), userID, id, req, clearParent)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, folder)
	return nil
}

func (h *Folder) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Folder not found")
	}

	deleted, err := h.FolderService.Delete(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, gin.H{"deletedCount": deleted})
	return nil
}

func (h *Folder) Children(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Folder not found")
	}

	children, err := h.FolderService.Children(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, children)
	return nil
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
