package store

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/models"
)

// Store wraps read and single-row write access to the synced tables.
// Batch writes go through the sync writer instead.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// MaxProductID returns the largest persisted product id, or nil when
// the table is empty.
func (s *Store) MaxProductID() (*int64, error) {
	return s.maxID(&models.ProductRow{})
}

// MaxOrderID returns the largest persisted order id, or nil when the
// table is empty.
func (s *Store) MaxOrderID() (*int64, error) {
	return s.maxID(&models.OrderRow{})
}

func (s *Store) maxID(model interface{}) (*int64, error) {
	row := s.db.Model(model).Select("MAX(id)").Row()
	var maxID sql.NullInt64
	if err := row.Scan(&maxID); err != nil {
		return nil, fmt.Errorf("failed to read max id: %w", err)
	}
	if !maxID.Valid {
		return nil, nil
	}
	return &maxID.Int64, nil
}

// AddCartItem inserts one cart row and fills in its generated cart id.
func (s *Store) AddCartItem(item *models.CartRow) error {
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to insert cart item for product %d: %w", item.ProductID, err)
	}
	return nil
}

// ListProducts returns one page of product rows, optionally filtered by
// a case-insensitive match on title or product type.
func (s *Store) ListProducts(search string, page, limit int) ([]models.ProductRow, int64, error) {
	var rows []models.ProductRow

	query := s.db.Model(&models.ProductRow{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR product_type LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (page - 1) * limit
	if err := query.Order("id, variant_id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	return rows, total, nil
}

// ListOrders returns one page of order rows.
func (s *Store) ListOrders(page, limit int) ([]models.OrderRow, int64, error) {
	var rows []models.OrderRow

	query := s.db.Model(&models.OrderRow{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return rows, total, nil
}
