package handler

import (
	"context"
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/database"
	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

type StatusChecker interface {
	Status(ctx context.Context) (database.Status, error)
}

type HealthHandler struct {
	db StatusChecker
}

func NewHealthHandler(db StatusChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Database reports whether the database answers
// @Summary  Database health
// @Tags     Health
// @Produce  json
// @Success  200 {object} api.HealthResponse
// @Failure  500 {object} api.HealthResponse
// @Router   /health/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	status, err := h.db.Status(c.Request.Context())
	if err != nil {
		logger.Log.Error("DB health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.HealthResponse{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.HealthResponse{
		OK:          true,
		Version:     status.Version,
		Collections: status.Collections,
	})
}
