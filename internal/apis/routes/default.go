package routes

import (
	"log"

	"orders-gateway/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupDefaultRoutes(router *gin.Engine) {
	healthHandler, err := di.GetHealthHandler()
	if err != nil {
		log.Fatalf("Failed to get health handler: %v", err)
	}

	router.GET("/", healthHandler.Home)
	router.GET("/health", healthHandler.Health)

	// Setup all route groups
	SetupQueryRoutes(router)
}
