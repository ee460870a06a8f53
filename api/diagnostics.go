package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

const diagnosticsTimeout = 5 * time.Second
const maxReportedCollections = 10

// (GET /)
func (h *Handler) GetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, Message{Message: "Hospital Management API is running"})
}

// (GET /test)
//
// Reports backend and database connectivity. This endpoint never fails the
// request; a broken store shows up in the response fields only.
func (h *Handler) TestDatabase(c echo.Context) error {
	response := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.db == nil {
		return c.JSON(http.StatusOK, response)
	}

	response.Database = "available"
	if h.storeConfig != nil {
		response.DatabaseName = h.storeConfig.DatabaseName
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), diagnosticsTimeout)
	defer cancel()

	collections, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		response.Database = "connected but error: " + truncate(err.Error(), 80)
		return c.JSON(http.StatusOK, response)
	}

	if len(collections) > maxReportedCollections {
		collections = collections[:maxReportedCollections]
	}
	response.Collections = collections
	response.Database = "connected"
	response.ConnectionStatus = "connected"

	return c.JSON(http.StatusOK, response)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
