package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
	"github.com/lexigraph/backend/pkg/textproc"
)

// GetFrequenciesHandler returns the word → count mapping over the session's
// full cache.
func GetFrequenciesHandler(c echo.Context) error {
	type getFrequenciesParams struct {
		SessionID string `param:"id" validate:"required"`
	}

	type getFrequenciesResponse struct {
		Message     string         `json:"message"`
		Frequencies map[string]int `json:"frequencies,omitempty"`
	}

	params := new(getFrequenciesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getFrequenciesResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getFrequenciesResponse{
			Message: "Invalid request params",
		})
	}

	registry := c.(*middleware.AppContext).App.Sessions
	s, ok := registry.Get(params.SessionID)
	if !ok {
		return c.JSON(http.StatusNotFound, getFrequenciesResponse{
			Message: "Session not found",
		})
	}

	var frequencies map[string]int
	s.Do(func(p *textproc.Processor) {
		frequencies = p.WordFrequencies()
	})

	return c.JSON(http.StatusOK, getFrequenciesResponse{
		Message:     "Frequencies computed successfully",
		Frequencies: frequencies,
	})
}
