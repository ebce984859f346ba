package router

import (
	"landingCards/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetLandingRoutes(api *echo.Group, handler *rest.LandingHandler) {
	landing := api.Group("/landing-cards")
	landing.POST("/evaluate", handler.Evaluate)
}

func SetLandingAdminRoutes(api *echo.Group, handler *rest.LandingAdminHandler) {
	admin := api.Group("/admin/landing-cards")
	admin.POST("/config/validate", handler.ValidateConfig)
}
