package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
)

// DeleteSessionHandler drops a processor session and its cache.
func DeleteSessionHandler(c echo.Context) error {
	type deleteSessionParams struct {
		SessionID string `param:"id" validate:"required"`
	}

	type deleteSessionResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteSessionParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteSessionResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteSessionResponse{
			Message: "Invalid request params",
		})
	}

	registry := c.(*middleware.AppContext).App.Sessions
	if !registry.Delete(params.SessionID) {
		return c.JSON(http.StatusNotFound, deleteSessionResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, deleteSessionResponse{
		Message: "Session deleted successfully",
	})
}
