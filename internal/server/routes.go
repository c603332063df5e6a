package server

import (
	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
	"github.com/lexigraph/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Session routes
	apiRoutes.POST("/sessions", routes.CreateSessionHandler)
	apiRoutes.DELETE("/sessions/:id", routes.DeleteSessionHandler)

	// Analysis routes
	apiRoutes.POST("/sessions/:id/generations", routes.IngestGenerationsHandler)
	apiRoutes.GET("/sessions/:id/graph", routes.GetGraphHandler)
	apiRoutes.GET("/sessions/:id/frequencies", routes.GetFrequenciesHandler)
	apiRoutes.GET("/sessions/:id/stats", routes.GetStatsHandler)

	// Utility routes
	apiRoutes.POST("/benchmark", routes.BenchmarkHandler)
	apiRoutes.GET("/system/memory", routes.GetMemoryHandler)
}
