package handler

import (
	"net/http"

	"Woorigil/pkg/context"
	"Woorigil/pkg/response"
	"Woorigil/service"

	"github.com/gin-gonic/gin"
)

type Prompt struct {
	PromptService service.IPromptService
}

func (h *Prompt) RegisterRouter(r gin.IRouter) {
	promptGroup := r.Group("/v1/diary_prompts")
	promptGroup.GET("", context.Wrap(h.List))
	promptGroup.GET("/random", context.Wrap(h.Random))
	promptGroup.GET("/categories", context.Wrap(h.Categories))
}

func (h *Prompt) List(c *gin.Context) error {
	prompts := h.PromptService.List(c.Request.Context(), c.Query("category"))
	response.Success(c, http.StatusOK, prompts)
	return nil
}

func (h *Prompt) Random(c *gin.Context) error {
	prompt := h.PromptService.Random(c.Request.Context(), c.Query("category"))
	if prompt == nil {
		return response.NotFound("Prompt not found")
	}
	response.Success(c, http.StatusOK, prompt)
	return nil
}

func (h *Prompt) Categories(c *gin.Context) error {
	response.Success(c, http.StatusOK, gin.H{"categories": h.PromptService.Categories()})
	return nil
}
