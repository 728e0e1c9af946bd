package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Category describes one template category shown in the editor's template
// picker.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// The category list is fixed and not derived from stored templates; the
// "personal" category exists even though no builtin template uses it yet.
var categories = []Category{
	{ID: "academic", Name: "Academic", Description: "Academic papers, theses, and research documents"},
	{ID: "business", Name: "Business", Description: "Reports, letters, and business documents"},
	{ID: "presentation", Name: "Presentation", Description: "Slides and presentation materials"},
	{ID: "personal", Name: "Personal", Description: "Personal documents and notes"},
}

// RegisterCategories registers the static GET /api/categories endpoint.
func RegisterCategories(r *gin.Engine) {
	r.GET("/api/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	})
}
