package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/formaltex/formal/backend/api/internal/document"
	"github.com/formaltex/formal/backend/api/internal/document/repository"
	"github.com/formaltex/formal/backend/api/pkg/logger"
)

const (
	defaultSkip  = 0
	defaultLimit = 20
)

// RegisterDocumentRoutes registers the /api/documents CRUD endpoints.
// Store failures are logged and reported as a generic 500; a missing id is
// a 404.
func RegisterDocumentRoutes(r *gin.Engine, repo repository.Repository) {
	r.POST("/api/documents", func(c *gin.Context) {
		var req document.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		now := time.Now().UTC()
		d := &document.Document{
			ID:         uuid.NewString(),
			Title:      req.Title,
			Content:    req.Content,
			TemplateID: req.TemplateID,
			CreatedAt:  now,
			UpdatedAt:  now,
			Tags:       req.Tags,
			Metadata:   map[string]interface{}{},
		}
		if d.Tags == nil {
			d.Tags = []string{}
		}
		if err := repo.Insert(c.Request.Context(), d); err != nil {
			logger.Errorf("error creating document: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.GET("/api/documents", func(c *gin.Context) {
		skip := queryInt64(c, "skip", defaultSkip)
		limit := queryInt64(c, "limit", defaultLimit)
		list, err := repo.List(c.Request.Context(), skip, limit)
		if err != nil {
			logger.Errorf("error fetching documents: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		d, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
				return
			}
			logger.Errorf("error fetching document %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.PUT("/api/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req document.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := repo.Update(c.Request.Context(), id, &req); err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
				return
			}
			logger.Errorf("error updating document %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
			return
		}
		// second round trip: re-read so the response reflects the stored state
		d, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			logger.Errorf("error re-reading document %s after update: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.DELETE("/api/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
				return
			}
			logger.Errorf("error deleting document %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
	})
}

func queryInt64(c *gin.Context, name string, def int64) int64 {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return def
	}
	return n
}
