package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/store"
)

type ProductHandler struct {
	store  *store.Store
	logger *logger.Logger
}

func NewProductHandler(store *store.Store, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		store:  store,
		logger: logger,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 250 {
		limit = 20
	}

	search := c.Query("search")

	rows, total, err := h.store.ListProducts(search, page, limit)
	if err != nil {
		h.logger.Error("Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
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
