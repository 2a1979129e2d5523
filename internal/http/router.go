package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"squares/backend/internal/handler"
)

func NewRouter(
	feedHandler *handler.FeedHandler,
	scrollHandler *handler.ScrollHandler,
	importHandler *handler.ImportHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	api := e.Group("/api")
	feedHandler.RegisterRoutes(api)
	scrollHandler.RegisterRoutes(api)
	importHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
