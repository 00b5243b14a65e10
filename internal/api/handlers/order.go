package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/store"
)

type OrderHandler struct {
	store  *store.Store
	logger *logger.Logger
}

func NewOrderHandler(store *store.Store, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		store:  store,
		logger: logger,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 250 {
		limit = 20
	}

	rows, total, err := h.store.ListOrders(page, limit)
	if err != nil {
		h.logger.Error("Failed to list orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": rows,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
