package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthRoutes registers the liveness probe
func HealthRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
