// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gearshed/gearshed/internal/handler"
	"github.com/gearshed/gearshed/internal/middleware"
	"github.com/gearshed/gearshed/internal/server"
)

// New builds the Echo instance with the full middleware stack and every
// route registered. The returned Echo doubles as the http.Handler passed
// to server.SetupHTTPServer.
func New(s *server.Server, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddlewares(s)

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.CORS())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.Recover())

	registerSystemRoutes(e, h)
	registerCatalogRoutes(e, h)

	return e
}
