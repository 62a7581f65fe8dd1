package apiclient

import (
	"context"
	"net/http"

	"taskboard/internal/api"
)

// DatabaseHealth queries /health/db. A down database comes back as *Error.
func (c *APIClient) DatabaseHealth(ctx context.Context) (api.HealthResponse, error) {
	var health api.HealthResponse
	err := c.do(ctx, http.MethodGet, "/health/db", nil, http.StatusOK, &health)
	return health, err
}
