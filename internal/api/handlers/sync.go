package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/sync"
)

type SyncHandler struct {
	run    func() (sync.Report, error)
	logger *logger.Logger
}

// NewSyncHandler takes the sync run as a closure so the handler does
// not carry Shopify credentials itself.
func NewSyncHandler(run func() (sync.Report, error), logger *logger.Logger) *SyncHandler {
	return &SyncHandler{
		run:    run,
		logger: logger,
	}
}

func (h *SyncHandler) Run(c *gin.Context) {
	report, err := h.run()
	if err != nil {
		h.logger.Error("Sync failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sync failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}
