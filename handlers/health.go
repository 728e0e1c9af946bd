package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHealth registers the liveness endpoint. It reports process
// liveness only; it does not probe the database.
func RegisterHealth(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Formal LaTeX Editor API is running",
		})
	})
}
