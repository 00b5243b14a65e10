package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
)

// QueryAgent is implemented by the LLM agent.
type QueryAgent interface {
	Answer(ctx context.Context, question string) (string, error)
}

// dbKeywords is a deny-list: questions about the database itself get a
// static refusal instead of reaching the agent.
var dbKeywords = []string{
	"database", "db", "product table", "table", "cart table", "order table",
	"columns", "prompt", "scheme", "schemas", "schema",
}

var greetings = []string{"hello", "hi", "hey", "hy", "good morning"}

const refusalMessage = "I'm sorry, but I cannot assist with queries related to the database structure or its content. This information is confidential and cannot be disclosed."

const genericErrorMessage = "An unexpected error occurred. Please try again."

type QueryHandler struct {
	agent  QueryAgent
	logger *logger.Logger
}

func NewQueryHandler(agent QueryAgent, logger *logger.Logger) *QueryHandler {
	return &QueryHandler{
		agent:  agent,
		logger: logger,
	}
}

func (h *QueryHandler) Ask(c *gin.Context) {
	var request struct {
		Query string `json:"query" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := strings.ToLower(strings.TrimSpace(request.Query))

	for _, greeting := range greetings {
		if query == greeting {
			c.JSON(http.StatusOK, gin.H{"answer": "Hello! How may I help you?"})
			return
		}
	}

	for _, keyword := range dbKeywords {
		if strings.Contains(query, keyword) {
			c.JSON(http.StatusOK, gin.H{"answer": refusalMessage})
			return
		}
	}

	answer, err := h.agent.Answer(c.Request.Context(), request.Query)
	if err != nil {
		h.logger.Error("Agent query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
