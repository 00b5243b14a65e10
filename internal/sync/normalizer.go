package sync

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/models"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/shopify"
)

// ErrUnsupportedOptionLayout is returned for products whose option
// definitions cannot be resolved positionally: an option outside
// positions 1-3, or more than one color or size option.
var ErrUnsupportedOptionLayout = errors.New("unsupported option layout")

// NormalizeProduct flattens one product into one row per variant, with
// the variant's color and size resolved through the product's option
// definitions.
func NormalizeProduct(product *shopify.Product) ([]models.ProductRow, error) {
	var colorPosition, sizePosition int
	for _, option := range product.Options {
		if option.Position < 1 || option.Position > 3 {
			return nil, fmt.Errorf("product %d: option %q at position %d: %w",
				product.ID, option.Name, option.Position, ErrUnsupportedOptionLayout)
		}
		switch name := strings.ToLower(option.Name); name {
		case "color", "colour":
			if colorPosition != 0 {
				return nil, fmt.Errorf("product %d: duplicate color option %q: %w",
					product.ID, option.Name, ErrUnsupportedOptionLayout)
			}
			colorPosition = option.Position
		case "size":
			if sizePosition != 0 {
				return nil, fmt.Errorf("product %d: duplicate size option %q: %w",
					product.ID, option.Name, ErrUnsupportedOptionLayout)
			}
			sizePosition = option.Position
		}
	}

	productType := SanitizeProductType(product.ProductType)
	imagePaths := joinImagePaths(product.Images)

	rows := make([]models.ProductRow, 0, len(product.Variants))
	for _, variant := range product.Variants {
		price, err := strconv.ParseFloat(variant.Price, 64)
		if err != nil {
			return nil, fmt.Errorf("product %d: variant %d has invalid price %q: %w",
				product.ID, variant.ID, variant.Price, err)
		}
		rows = append(rows, models.ProductRow{
			ID:          product.ID,
			VariantID:   variant.ID,
			Title:       product.Title,
			Price:       price,
			Colors:      optionValue(&variant, colorPosition),
			Size:        optionValue(&variant, sizePosition),
			ProductType: productType,
			ImagePaths:  imagePaths,
		})
	}
	return rows, nil
}

// NormalizeOrder flattens one order into exactly one row. Missing
// addresses become the literal string "N/A".
func NormalizeOrder(order *shopify.Order) (models.OrderRow, error) {
	price, err := strconv.ParseFloat(order.TotalPrice, 64)
	if err != nil {
		return models.OrderRow{}, fmt.Errorf("order %d has invalid total price %q: %w",
			order.ID, order.TotalPrice, err)
	}

	items := make([]string, len(order.LineItems))
	for i, item := range order.LineItems {
		items[i] = fmt.Sprintf("%s (Quantity: %d)", item.Name, item.Quantity)
	}

	return models.OrderRow{
		ID:              order.ID,
		Email:           order.Email,
		CreatedAt:       order.CreatedAt,
		TotalPrice:      price,
		LineItems:       strings.Join(items, ", "),
		ShippingAddress: formatAddress(order.ShippingAddress),
		BillingAddress:  formatAddress(order.BillingAddress),
	}, nil
}

// SanitizeProductType strips apostrophes and ampersands, which break
// downstream query matching.
func SanitizeProductType(productType string) string {
	productType = strings.ReplaceAll(productType, "'", "")
	return strings.ReplaceAll(productType, "&", "")
}

func formatAddress(address *shopify.Address) string {
	if address == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		address.Address1, address.City, address.Province, address.Zip, address.Country)
}

func joinImagePaths(images []shopify.Image) string {
	paths := make([]string, len(images))
	for i, image := range images {
		paths[i] = image.Src
	}
	return strings.Join(paths, ", ")
}

// optionValue reads the variant value slot declared by an option's
// 1-based position. Position 0 means no such option exists.
func optionValue(variant *shopify.Variant, position int) string {
	var value *string
	switch position {
	case 1:
		value = variant.Option1
	case 2:
		value = variant.Option2
	case 3:
		value = variant.Option3
	}
	if value == nil {
		return ""
	}
	return *value
}
