package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
	"github.com/lexigraph/backend/internal/session"
	"github.com/lexigraph/backend/pkg/logger"
)

// CreateSessionHandler registers a new processor session and returns its ID.
func CreateSessionHandler(c echo.Context) error {
	type createSessionResponse struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id,omitempty"`
	}

	registry := c.(*middleware.AppContext).App.Sessions

	s, err := registry.Create()
	if err != nil {
		if errors.Is(err, session.ErrSessionLimit) {
			return c.JSON(http.StatusTooManyRequests, createSessionResponse{
				Message: "Session limit reached",
			})
		}
		logger.Error("Failed to create session", "err", err)
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createSessionResponse{
		Message:   "Session created successfully",
		SessionID: s.ID,
	})
}
