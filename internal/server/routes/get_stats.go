package routes

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
	"github.com/lexigraph/backend/pkg/textproc"
)

// GetStatsHandler returns the aggregate stats of the session's last ingest.
// The average is undefined before the first ingest; since JSON has no NaN it
// is rendered as null in that case.
func GetStatsHandler(c echo.Context) error {
	type getStatsParams struct {
		SessionID string `param:"id" validate:"required"`
	}

	type statsData struct {
		TotalWords                int      `json:"totalWords"`
		UniqueWords               int      `json:"uniqueWords"`
		Generations               int      `json:"generations"`
		AverageWordsPerGeneration *float64 `json:"averageWordsPerGeneration"`
	}

	type getStatsResponse struct {
		Message string     `json:"message"`
		Stats   *statsData `json:"stats,omitempty"`
	}

	params := new(getStatsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getStatsResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getStatsResponse{
			Message: "Invalid request params",
		})
	}

	registry := c.(*middleware.AppContext).App.Sessions
	s, ok := registry.Get(params.SessionID)
	if !ok {
		return c.JSON(http.StatusNotFound, getStatsResponse{
			Message: "Session not found",
		})
	}

	var stats textproc.PerformanceStats
	s.Do(func(p *textproc.Processor) {
		stats = p.PerformanceStats()
	})

	data := statsData{
		TotalWords:  stats.TotalWords,
		UniqueWords: stats.UniqueWords,
		Generations: stats.Generations,
	}
	if !math.IsNaN(stats.AverageWordsPerGeneration) {
		data.AverageWordsPerGeneration = &stats.AverageWordsPerGeneration
	}

	return c.JSON(http.StatusOK, getStatsResponse{
		Message: "Stats computed successfully",
		Stats:   &data,
	})
}
