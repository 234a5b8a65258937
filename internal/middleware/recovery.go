package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"orders-gateway/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

// CustomRecoveryMiddleware converts panics into the same JSON error shape
// the handlers use, so no request ever surfaces a framework crash page.
func CustomRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// Print stack trace
				debugStack := string(debug.Stack())
				fmt.Printf("Recovery from panic: %v\nStack Trace:\n%s\n", err, debugStack)

				errorMsg := "Internal Server Error"
				if gin.IsDebugging() {
					errorMsg = fmt.Sprintf("Internal Server Error: %v", err)
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: errorMsg})
			}
		}()
		c.Next()
	}
}
