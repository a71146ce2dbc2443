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

type Course struct {
	Config            *config.Config
	CourseService     service.ICourseService
	DirectionsService service.IDirectionsService
}

func (h *Course) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	courseGroup := r.Group("/v1/courses")
	courseGroup.Use(authorize)
	courseGroup.POST("", context.Wrap(h.Create))
	courseGroup.GET("", context.Wrap(h.List))
	courseGroup.GET("/:id", context.Wrap(h.Get))
	courseGroup.DELETE("/:id", context.Wrap(h.Delete))
	courseGroup.GET("/:id/directions", context.Wrap(h.Directions))
}

func (h *Course) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	var req types.CreateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Validation failed", err.Error())
	}

	course, err := h.CourseService.Create(c.Request.Context(), userID, req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, course)
	return nil
}

func (h *Course) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}

	courses, err := h.CourseService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, courses)
	return nil
}

func (h *Course) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Course not found")
	}

	course, err := h.CourseService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, course)
	return nil
}

func (h *Course) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Course not found")
	}

	if err := h.CourseService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

func (h *Course) Directions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized()
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.NotFound("Course not found")
	}

	directions, err := h.DirectionsService.CourseDirections(
		c.Request.Context(), userID, id, c.Query("mode"))
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, directions)
	return nil
}
