package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"taskboard/internal/api"
	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured record per API request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		logger.Log.Log(c.Request.Context(), level, "[API]", attrs...)
	}
}

// Recovery turns a panic into a 500 with the usual {error} body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("panic recovered", "path", c.Request.URL.Path, "panic", fmt.Sprint(recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	})
}
