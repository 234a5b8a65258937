package handlers

import (
	"net/http"

	"orders-gateway/config"
	"orders-gateway/internal/apis/dtos"
	"orders-gateway/internal/services"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	queryService services.QueryService
}

func NewHealthHandler(queryService services.QueryService) *HealthHandler {
	return &HealthHandler{queryService: queryService}
}

func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.HomeResponse{
		Message: "TLB Kitchen Custom Orders API",
		Status:  "running",
		Endpoints: []string{
			"/health - Health check",
			"/api/categories - Get categories",
			"/api/find - Find documents",
			"/api/findOne - Find one document",
			"/api/aggregate - Aggregate query",
		},
	})
}

// Health reports real database reachability: it triggers lazy
// initialization if needed and pings the server.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.queryService.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dtos.HealthResponse{
			Status:   "unhealthy",
			API:      "running",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dtos.HealthResponse{
		Status:       "healthy",
		API:          "running",
		Database:     "connected",
		DatabaseName: config.Env.DatabaseName,
	})
}
