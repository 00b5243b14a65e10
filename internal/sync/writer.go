package sync

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/models"
)

// Writer appends normalized rows to the store. One transaction spans a
// whole batch; a row that fails to insert (typically a duplicate key)
// is logged and skipped without aborting the rest. There is no upsert.
type Writer struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewWriter(db *gorm.DB, logger *logger.Logger) *Writer {
	return &Writer{
		db:     db,
		logger: logger,
	}
}

func (w *Writer) WriteProducts(rows <-chan models.ProductRow) (int, error) {
	return writeAll(w, rows, func(row models.ProductRow) string {
		return fmt.Sprintf("product %d variant %d", row.ID, row.VariantID)
	})
}

func (w *Writer) WriteOrders(rows <-chan models.OrderRow) (int, error) {
	return writeAll(w, rows, func(row models.OrderRow) string {
		return fmt.Sprintf("order %d", row.ID)
	})
}

func writeAll[T any](w *Writer, rows <-chan T, describe func(T) string) (int, error) {
	tx := w.db.Begin()
	if tx.Error != nil {
		// Drain so the upstream producers can finish.
		for range rows {
		}
		return 0, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	inserted := 0
	for row := range rows {
		if err := tx.Create(&row).Error; err != nil {
			w.logger.Error("Error inserting %s: %v", describe(row), err)
			continue
		}
		w.logger.Debug("Saved %s", describe(row))
		inserted++
	}

	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}
	return inserted, nil
}
