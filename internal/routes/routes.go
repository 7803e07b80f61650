package routes

import (
	"storefront/internal/auth"
	"storefront/internal/handlers"
	"storefront/internal/logger"
	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	verifier *auth.Verifier,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api")
	api.Use(middleware.AuthMiddleware(verifier))
	{
		appHandlers.ProcedureHandler.RegisterRoutes(api)
		appHandlers.StorefrontHandler.RegisterRoutes(api.Group("/v1"))
	}
	logger.Info("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
