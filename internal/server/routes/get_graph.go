package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
	"github.com/lexigraph/backend/pkg/textproc"
)

// GetGraphHandler builds the co-occurrence graph over the session's current
// cache snapshot at the requested minimum frequency.
func GetGraphHandler(c echo.Context) error {
	type getGraphRequest struct {
		SessionID    string `param:"id" validate:"required"`
		MinFrequency int    `query:"min_frequency" validate:"gte=0"`
	}

	type getGraphResponse struct {
		Message string              `json:"message"`
		Graph   *textproc.GraphData `json:"graph,omitempty"`
	}

	data := new(getGraphRequest)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request params",
		})
	}

	registry := c.(*middleware.AppContext).App.Sessions
	s, ok := registry.Get(data.SessionID)
	if !ok {
		return c.JSON(http.StatusNotFound, getGraphResponse{
			Message: "Session not found",
		})
	}

	var graph textproc.GraphData
	s.Do(func(p *textproc.Processor) {
		graph = p.BuildGraph(data.MinFrequency)
	})

	return c.JSON(http.StatusOK, getGraphResponse{
		Message: "Graph built successfully",
		Graph:   &graph,
	})
}
