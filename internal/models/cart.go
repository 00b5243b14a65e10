package models

// CartRow is a denormalized cart entry written on behalf of external
// callers. The sync pipeline never produces these.
type CartRow struct {
	CartID    int64   `json:"cart_id" gorm:"column:cart_id;primaryKey;autoIncrement"`
	ProductID int64   `json:"product_id" gorm:"column:product_id;not null"`
	VariantID int64   `json:"variant_id" gorm:"column:variant_id;not null"`
	Title     string  `json:"title" gorm:"column:title;not null"`
	Price     float64 `json:"price" gorm:"column:price;not null"`
	Colors    string  `json:"colors" gorm:"column:colors"`
	Size      string  `json:"size" gorm:"column:size"`
	UserID    string  `json:"user_id" gorm:"column:user_id;not null"`
	Timestamp string  `json:"timestamp" gorm:"column:timestamp;not null"`
}

func (CartRow) TableName() string {
	return "shopify_cart"
}
