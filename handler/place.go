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

type Place struct {
	Config       *config.Config
	PlaceService service.IPlaceService
	LikeService  service.ILikeService
}

func (h *Place) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	placeGroup := r.Group("/v1/places")
	placeGroup.Use(authorize)
	placeGroup.POST("", context.Wrap(h.Create))
	placeGroup.GET("", context.Wrap(h.List))
	placeGroup.GET("/liked", context.Wrap(h.Liked))
	placeGroup.GET("/:place_id", context.Wrap(h.Get))
	placeGroup.POST("/:place_id/likes", context.Wrap(h.ToggleLike))

	// shared place pool, no login required
	r.Group("/v1").GET("/my_search", context.Wrap(h.MySearch))
	r.Group("/v1").GET("/my_search/categories", context.Wrap(h.Categories))
	r.Group("/v1").GET("/popular_places", context.Wrap(h.Popular))
}

func (h *Place) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.CreatePlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	place, err := h.PlaceService.Create(c.Request.Context(), userID, req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, place)
	return nil
}

func (h *Place) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	places, err := h.PlaceService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, places)
	return nil
}

func (h *Place) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "place_id")
	if err != nil {
		return response.NotFound("Place not found")
	}

	place, err := h.PlaceService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, place)
	return nil
}

func (h *Place) Liked(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	places, err := h.PlaceService.Liked(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, places)
	return nil
}

func (h *Place) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	placeID, err := pathID(c, "place_id")
	if err != nil {
		return response.NotFound("Place not found")
	}

	result, err := h.LikeService.Toggle(c.Request.Context(), userID, placeID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, result)
	return nil
}

func (h *Place) MySearch(c *gin.Context) error {
	var req types.MySearchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	places, err := h.PlaceService.MySearch(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, places)
	return nil
}

func (h *Place) Categories(c *gin.Context) error {
	categories, err := h.PlaceService.Categories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
	return nil
}

func (h *Place) Popular(c *gin.Context) error {
	places, err := h.PlaceService.Popular(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, places)
	return nil
}
