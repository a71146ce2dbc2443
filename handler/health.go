package handler

import (
	"net/http"

	"Woorigil/pkg/context"
	"Woorigil/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Health struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.Group("/health").GET("", context.Wrap(h.Check))
	r.Group("/health").GET("/detailed", context.Wrap(h.Detailed))
}

func (h *Health) Check(c *gin.Context) error {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	return nil
}

// Detailed pings the backing stores and reports 503 when any is down.
func (h *Health) Detailed(c *gin.Context) error {
	checks := gin.H{"database": "ok", "redis": "ok"}
	healthy := true

	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		checks["database"] = "unreachable"
		healthy = false
	}
	if err := h.Redis.Ping(c.Request.Context()).Err(); err != nil {
		checks["redis"] = "unreachable"
		healthy = false
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	response.Success(c, status, gin.H{"status": overall, "checks": checks})
	return nil
}
