package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/formaltex/formal/backend/api/internal/chat"
	"github.com/formaltex/formal/backend/api/internal/chat/repository"
	"github.com/formaltex/formal/backend/api/pkg/logger"
)

// placeholderResponse is returned for every chat request until a real AI
// integration replaces this stub. The incoming message is ignored.
func placeholderResponse() *chat.Response {
	return &chat.Response{
		Message: "AI integration coming soon! This is a placeholder response.",
		Suggestions: []string{
			"Try adding some mathematical equations with \\begin{equation}",
			"Consider using \\section{} to organize your content",
			"Use \\textbf{} for bold text and \\textit{} for italic text",
		},
	}
}

// RegisterChatRoutes registers the POST /api/chat stub. Every request is
// persisted together with the stringified response before replying.
func RegisterChatRoutes(r *gin.Engine, repo repository.Repository) {
	r.POST("/api/chat", func(c *gin.Context) {
		var req chat.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp := placeholderResponse()

		ctxMap := req.Context
		if ctxMap == nil {
			ctxMap = map[string]interface{}{}
		}
		msg := &chat.Message{
			ID:         uuid.NewString(),
			DocumentID: req.DocumentID,
			Message:    req.Message,
			// stored as a plain string for now; a structured record can
			// replace this when the real integration lands
			Response:  fmt.Sprintf("%v", *resp),
			Timestamp: time.Now().UTC(),
			Context:   ctxMap,
		}
		if err := repo.Insert(c.Request.Context(), msg); err != nil {
			logger.Errorf("error storing chat message: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat service temporarily unavailable"})
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}
