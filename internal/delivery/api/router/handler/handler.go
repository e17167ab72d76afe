// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"net/http"
	"strconv"

	"carewatch/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// HealthCheck handles the liveness probe
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// parseUUIDParam reads a path parameter as a UUID. On failure the 400 response is
// already written and the returned error must be passed back to echo.
func parseUUIDParam(c echo.Context, name, label string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+label+" ID")
	}

	return id, true, nil
}

// parseLimit reads the optional ?limit= query parameter, clamped to maxListLimit.
func parseLimit(c echo.Context) (int, bool, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return defaultListLimit, true, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, false, response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
	}

	return min(limit, maxListLimit), true, nil
}
