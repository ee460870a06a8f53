package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// (GET /stats)
//
// Always responds 200. When the store cannot be queried the synthesizer
// substitutes the static fallback snapshot, so a degraded store never
// surfaces as an HTTP error here.
func (h *Handler) GetLiveStats(c echo.Context) error {
	snapshot := h.stats.Snapshot(c.Request().Context())
	return c.JSON(http.StatusOK, snapshot)
}
