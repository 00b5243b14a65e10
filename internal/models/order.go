package models

// OrderRow is one persisted Shopify order, flattened: line items and
// addresses are pre-formatted strings so downstream consumers never
// re-join nested records.
type OrderRow struct {
	ID              int64   `json:"id" gorm:"column:id;primaryKey"`
	Email           string  `json:"email" gorm:"column:email;not null"`
	CreatedAt       string  `json:"created_at" gorm:"column:created_at;not null"`
	TotalPrice      float64 `json:"total_price" gorm:"column:total_price;not null"`
	LineItems       string  `json:"line_items" gorm:"column:line_items"`
	ShippingAddress string  `json:"shipping_address" gorm:"column:shipping_address"`
	BillingAddress  string  `json:"billing_address" gorm:"column:billing_address"`
}

func (OrderRow) TableName() string {
	return "shopify_orders"
}
