package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/database"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db.DB)
}

func TestMaxProductIDEmptyTable(t *testing.T) {
	store := openTestStore(t)

	maxID, err := store.MaxProductID()
	require.NoError(t, err)
	assert.Nil(t, maxID)
}

func TestMaxProductID(t *testing.T) {
	store := openTestStore(t)

	rows := []models.ProductRow{
		{ID: 5, VariantID: 50, Title: "A", Price: 1},
		{ID: 9, VariantID: 90, Title: "B", Price: 2},
		{ID: 9, VariantID: 91, Title: "B", Price: 2},
	}
	for _, row := range rows {
		require.NoError(t, store.db.Create(&row).Error)
	}

	maxID, err := store.MaxProductID()
	require.NoError(t, err)
	require.NotNil(t, maxID)
	assert.Equal(t, int64(9), *maxID)
}

func TestMaxOrderID(t *testing.T) {
	store := openTestStore(t)

	maxID, err := store.MaxOrderID()
	require.NoError(t, err)
	assert.Nil(t, maxID)

	order := models.OrderRow{ID: 42, Email: "a@example.com", CreatedAt: "2024-05-01T00:00:00Z", TotalPrice: 10}
	require.NoError(t, store.db.Create(&order).Error)

	maxID, err = store.MaxOrderID()
	require.NoError(t, err)
	require.NotNil(t, maxID)
	assert.Equal(t, int64(42), *maxID)
}

func TestAddCartItemGeneratesSurrogateIDs(t *testing.T) {
	store := openTestStore(t)

	first := models.CartRow{ProductID: 1, VariantID: 10, Title: "Tee", Price: 19.99, UserID: "u1", Timestamp: "2024-05-01T00:00:00Z"}
	second := models.CartRow{ProductID: 1, VariantID: 10, Title: "Tee", Price: 19.99, UserID: "u1", Timestamp: "2024-05-01T00:01:00Z"}

	require.NoError(t, store.AddCartItem(&first))
	require.NoError(t, store.AddCartItem(&second))

	assert.NotZero(t, first.CartID)
	assert.NotZero(t, second.CartID)
	assert.NotEqual(t, first.CartID, second.CartID)
}

func TestListProductsSearch(t *testing.T) {
	store := openTestStore(t)

	rows := []models.ProductRow{
		{ID: 1, VariantID: 10, Title: "Classic Tee", ProductType: "Mens T-Shirts", Price: 19.99},
		{ID: 2, VariantID: 20, Title: "Cap", ProductType: "Accessories", Price: 9.99},
		{ID: 3, VariantID: 30, Title: "Running Shoes", ProductType: "Shoes", Price: 59.99},
	}
	for _, row := range rows {
		require.NoError(t, store.db.Create(&row).Error)
	}

	got, total, err := store.ListProducts("shoes", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "Running Shoes", got[0].Title)

	got, total, err = store.ListProducts("", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, got, 2)
}

func TestListOrdersPagination(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		order := models.OrderRow{ID: int64(i), Email: "a@example.com", CreatedAt: "2024-05-01T00:00:00Z", TotalPrice: 1}
		require.NoError(t, store.db.Create(&order).Error)
	}

	got, total, err := store.ListOrders(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
}
