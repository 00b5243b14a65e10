package database

import (
	"fmt"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

// PathFor returns the database file for a shop handle. Each shop gets
// its own file so stores never mix.
func PathFor(dataDir, shopHandle string) string {
	return filepath.Join(dataDir, fmt.Sprintf("%s_shopify_data.db", shopHandle))
}

func New(dsn string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create tables manually with raw SQL
	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS shopify_products (
		id INTEGER NOT NULL,
		variant_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		price REAL NOT NULL,
		colors TEXT,
		size TEXT,
		product_type TEXT,
		image_paths TEXT,
		PRIMARY KEY (id, variant_id)
	);

	CREATE TABLE IF NOT EXISTS shopify_orders (
		id INTEGER PRIMARY KEY,
		email TEXT NOT NULL,
		created_at TEXT NOT NULL,
		total_price REAL NOT NULL,
		line_items TEXT,
		shipping_address TEXT,
		billing_address TEXT
	);

	CREATE TABLE IF NOT EXISTS shopify_cart (
		cart_id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL,
		variant_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		price REAL NOT NULL,
		colors TEXT,
		size TEXT,
		user_id TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);
	`

	err = db.Exec(createTablesSQL).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
