package router

import (
	"auraSync/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupBodyShapeRoutes(api *echo.Group, handler *rest.BodyShapeHandler) {
	bodyShape := api.Group("/body-shape")

	bodyShape.POST("/classify", handler.Classify)
	bodyShape.GET("/archetypes", handler.Archetypes)
}

func SetupOnboardingRoutes(api *echo.Group, handler *rest.OnboardingHandler, authRequired echo.MiddlewareFunc) {
	onboarding := api.Group("/onboarding", authRequired)

	onboarding.POST("/analysis", handler.SubmitAnalysis)
	onboarding.GET("/profile", handler.GetProfile)
}

func SetupOutfitRoutes(api *echo.Group, handler *rest.OutfitHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	outfits := api.Group("/outfits")

	outfits.GET("", handler.ListOutfits)
	outfits.GET("/:id", handler.GetOutfitByID)
	outfits.POST("", handler.CreateOutfit, authRequired, adminOnly)
	outfits.DELETE("/:id", handler.DeleteOutfit, authRequired, adminOnly)
}

func SetupPointsRoutes(api *echo.Group, handler *rest.PointsHandler, authRequired echo.MiddlewareFunc) {
	points := api.Group("/points", authRequired)

	points.GET("", handler.GetBalance)
	points.GET("/history", handler.GetHistory)
	points.POST("/spend", handler.Spend)
}
