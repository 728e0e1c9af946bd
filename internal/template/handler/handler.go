package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formaltex/formal/backend/api/internal/template/repository"
	"github.com/formaltex/formal/backend/api/pkg/logger"
)

// RegisterTemplateRoutes registers the read-only /api/templates endpoints.
// Listing takes an optional exact-match ?category= filter and is not
// paginated.
func RegisterTemplateRoutes(r *gin.Engine, repo repository.Repository) {
	r.GET("/api/templates", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			logger.Errorf("error fetching templates: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/templates/:id", func(c *gin.Context) {
		id := c.Param("id")
		t, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
				return
			}
			logger.Errorf("error fetching template %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch template"})
			return
		}
		c.JSON(http.StatusOK, t)
	})
}
