package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/models"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/store"
)

type CartHandler struct {
	store  *store.Store
	logger *logger.Logger
}

func NewCartHandler(store *store.Store, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		store:  store,
		logger: logger,
	}
}

// Add inserts one cart row on behalf of an external caller. Callers
// without a user id get an anonymous one.
func (h *CartHandler) Add(c *gin.Context) {
	var request struct {
		ProductID int64   `json:"product_id" binding:"required"`
		VariantID int64   `json:"variant_id" binding:"required"`
		Title     string  `json:"title" binding:"required"`
		Price     float64 `json:"price"`
		Colors    string  `json:"colors"`
		Size      string  `json:"size"`
		UserID    string  `json:"user_id"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.UserID == "" {
		request.UserID = uuid.New().String()
	}

	item := models.CartRow{
		ProductID: request.ProductID,
		VariantID: request.VariantID,
		Title:     request.Title,
		Price:     request.Price,
		Colors:    request.Colors,
		Size:      request.Size,
		UserID:    request.UserID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.store.AddCartItem(&item); err != nil {
		h.logger.Error("Failed to add cart item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": item})
}
