package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
	"github.com/lexigraph/backend/internal/util"
	"github.com/lexigraph/backend/pkg/textproc"
)

// IngestGenerationsHandler tokenizes a batch of generations into the
// session's word cache, replacing whatever the previous batch built.
func IngestGenerationsHandler(c echo.Context) error {
	type ingestRequest struct {
		SessionID   string `param:"id" validate:"required"`
		Generations []any  `json:"generations"`
	}

	type ingestResponse struct {
		Message string                 `json:"message"`
		Result  *textproc.IngestResult `json:"result,omitempty"`
	}

	data := new(ingestRequest)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, ingestResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, ingestResponse{
			Message: "Invalid request body",
		})
	}

	registry := c.(*middleware.AppContext).App.Sessions
	s, ok := registry.Get(data.SessionID)
	if !ok {
		return c.JSON(http.StatusNotFound, ingestResponse{
			Message: "Session not found",
		})
	}

	// Non-string entries are dropped silently; this is the documented
	// data-loss-on-ingest behavior of the boundary, not an error.
	generations := make([]string, 0, len(data.Generations))
	for _, entry := range data.Generations {
		text, ok := entry.(string)
		if !ok {
			continue
		}
		generations = append(generations, util.SanitizeText(text))
	}

	var result textproc.IngestResult
	s.Do(func(p *textproc.Processor) {
		result = p.IngestBatch(generations)
	})

	return c.JSON(http.StatusOK, ingestResponse{
		Message: "Batch ingested successfully",
		Result:  &result,
	})
}
