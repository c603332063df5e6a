package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/session"
)

// App bundles the shared dependencies every request handler needs.
type App struct {
	Sessions *session.Registry
	APIKey   string
}

// AppContext wraps the echo context with the application state.
type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(sessions *session.Registry, apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				Sessions: sessions,
				APIKey:   apiKey,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
