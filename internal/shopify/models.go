package shopify

// Product represents a Shopify product
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Handle      string    `json:"handle"`
	Status      string    `json:"status"`
	Tags        string    `json:"tags"`
	Variants    []Variant `json:"variants"`
	Images      []Image   `json:"images"`
	Options     []Option  `json:"options"`
}

// Variant represents a product variant
type Variant struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Price     string  `json:"price"`
	Sku       string  `json:"sku"`
	Position  int     `json:"position"`
	Option1   *string `json:"option1"`
	Option2   *string `json:"option2"`
	Option3   *string `json:"option3"`
}

// Image represents a product image
type Image struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Position  int    `json:"position"`
	Src       string `json:"src"`
}

// Option represents a product option such as "Color" or "Size".
// Position says which of the variant's three positional value slots
// holds this option's value and is 1-based.
type Option struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"product_id"`
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	Values    []string `json:"values"`
}

// Order represents a Shopify order
type Order struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email"`
	CreatedAt       string     `json:"created_at"`
	TotalPrice      string     `json:"total_price"`
	LineItems       []LineItem `json:"line_items"`
	ShippingAddress *Address   `json:"shipping_address"`
	BillingAddress  *Address   `json:"billing_address"`
}

// LineItem represents one purchased item on an order
type LineItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Address represents a shipping or billing address
type Address struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// ProductsResponse represents the response from the products API
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// OrdersResponse represents the response from the orders API
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// CountResponse represents the response from a count endpoint
type CountResponse struct {
	Count int `json:"count"`
}
