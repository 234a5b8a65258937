package routes

import (
	"log"

	"orders-gateway/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupQueryRoutes(router *gin.Engine) {
	queryHandler, err := di.GetQueryHandler()
	if err != nil {
		log.Fatalf("Failed to get query handler: %v", err)
	}

	api := router.Group("/api")
	{
		api.GET("/categories", queryHandler.Categories)
		api.POST("/findOne", queryHandler.FindOne)
		api.POST("/find", queryHandler.Find)
		api.POST("/aggregate", queryHandler.Aggregate)
		api.POST("/count", queryHandler.Count)
	}
}
