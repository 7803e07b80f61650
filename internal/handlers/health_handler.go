package handlers

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/database"
	"storefront/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/healthz", h.Health)
}

// Health пингует БД
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.GetDB(c)); err != nil {
		h.HandleServiceError(c, apperrors.DatabaseError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
