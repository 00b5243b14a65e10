package models

// ProductRow is one persisted variant of a Shopify product. The table
// is keyed by (product id, variant id); rows are insert-only.
type ProductRow struct {
	ID          int64   `json:"id" gorm:"column:id;primaryKey"`
	VariantID   int64   `json:"variant_id" gorm:"column:variant_id;primaryKey"`
	Title       string  `json:"title" gorm:"column:title;not null"`
	Price       float64 `json:"price" gorm:"column:price;not null"`
	Colors      string  `json:"colors" gorm:"column:colors"`
	Size        string  `json:"size" gorm:"column:size"`
	ProductType string  `json:"product_type" gorm:"column:product_type"`
	ImagePaths  string  `json:"image_paths" gorm:"column:image_paths"`
}

func (ProductRow) TableName() string {
	return "shopify_products"
}
