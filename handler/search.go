package handler

import (
	"net/http"
	"strconv"

	"Woorigil/pkg/context"
	"Woorigil/pkg/response"
	"Woorigil/service"

	"github.com/gin-gonic/gin"
)

type Search struct {
	SearchService service.ISearchService
}

func (h *Search) RegisterRouter(r gin.IRouter) {
	r.Group("/v1").GET("/search", context.Wrap(h.Search))
}

// Search proxies the place search; it is public and never fails on provider
// trouble, it just returns fewer (or zero) items.
func (h *Search) Search(c *gin.Context) error {
	query := c.Query("query")
	if query == "" {
		return response.BadRequest("Validation failed", "query is required")
	}
	display, _ := strconv.Atoi(c.DefaultQuery("display", "5"))

	result := h.SearchService.SearchPlaces(c.Request.Context(), query, display)
	response.Success(c, http.StatusOK, result)
	return nil
}
