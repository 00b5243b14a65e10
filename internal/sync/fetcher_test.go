package sync

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/shopify"
)

type pageResult struct {
	products []shopify.Product
	err      error
}

// scriptedCatalog returns pre-scripted responses, one per ListProducts
// call, and records the since-id cursor of each call.
type scriptedCatalog struct {
	count    int
	countErr error
	pages    []pageResult
	calls    int
	sinceIDs []int64
}

func (c *scriptedCatalog) CountProducts() (int, error) {
	return c.count, c.countErr
}

func (c *scriptedCatalog) ListProducts(sinceID int64, limit int) ([]shopify.Product, error) {
	c.sinceIDs = append(c.sinceIDs, sinceID)
	if c.calls >= len(c.pages) {
		return nil, nil
	}
	page := c.pages[c.calls]
	c.calls++
	return page.products, page.err
}

func (c *scriptedCatalog) CountOrders() (int, error) {
	return 0, nil
}

func (c *scriptedCatalog) ListOrders(sinceID int64, limit int) ([]shopify.Order, error) {
	return nil, nil
}

func makeProducts(fromID, n int) []shopify.Product {
	products := make([]shopify.Product, n)
	for i := range products {
		products[i] = shopify.Product{ID: int64(fromID + i)}
	}
	return products
}

func newTestFetcher(client CatalogClient) *Fetcher {
	f := NewFetcher(client, logger.New("error"))
	f.retryDelay = time.Millisecond
	return f
}

func TestFetcherPaginatesWithSinceID(t *testing.T) {
	catalog := &scriptedCatalog{
		count: 430,
		pages: []pageResult{
			{products: makeProducts(1, 250)},
			{products: makeProducts(251, 180)},
		},
	}

	got := collect(newTestFetcher(catalog).Products())

	require.Len(t, got, 430)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(430), got[429].ID)
	// Second page asks for records after the last id of the first.
	assert.Equal(t, []int64{0, 250}, catalog.sinceIDs)
}

func TestFetcherShortPageEndsFetchDespiteCountEstimate(t *testing.T) {
	// Count predicts three pages but the first page is already short.
	catalog := &scriptedCatalog{
		count: 700,
		pages: []pageResult{
			{products: makeProducts(1, 180)},
		},
	}

	got := collect(newTestFetcher(catalog).Products())

	assert.Len(t, got, 180)
	assert.Equal(t, 1, catalog.calls)
}

func TestFetcherEmptyPageEndsFetch(t *testing.T) {
	catalog := &scriptedCatalog{
		count: 300,
		pages: []pageResult{
			{products: nil},
		},
	}

	got := collect(newTestFetcher(catalog).Products())

	assert.Empty(t, got)
}

func TestFetcherRetriesThenSucceeds(t *testing.T) {
	catalog := &scriptedCatalog{
		count: 100,
		pages: []pageResult{
			{err: errors.New("boom")},
			{err: errors.New("boom again")},
			{products: makeProducts(1, 100)},
		},
	}

	fetcher := newTestFetcher(catalog)
	fetcher.retryDelay = 20 * time.Millisecond

	start := time.Now()
	got := collect(fetcher.Products())
	elapsed := time.Since(start)

	assert.Len(t, got, 100)
	assert.Equal(t, 3, catalog.calls)
	// Two failed attempts, each followed by one delay.
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestFetcherAbortsAfterRetriesExhausted(t *testing.T) {
	catalog := &scriptedCatalog{
		count: 600,
		pages: []pageResult{
			{products: makeProducts(1, 250)},
			{err: errors.New("boom")},
			{err: errors.New("boom")},
			{err: errors.New("boom")},
		},
	}

	got := collect(newTestFetcher(catalog).Products())

	// The first page was already yielded; the abort is silent.
	assert.Len(t, got, 250)
	assert.Equal(t, 4, catalog.calls)
}

func TestFetcherZeroCountFetchesNothing(t *testing.T) {
	catalog := &scriptedCatalog{count: 0}

	got := collect(newTestFetcher(catalog).Products())

	assert.Empty(t, got)
	assert.Equal(t, 0, catalog.calls)
}

func TestFetcherCountErrorEndsStream(t *testing.T) {
	catalog := &scriptedCatalog{countErr: errors.New("boom")}

	got := collect(newTestFetcher(catalog).Products())

	assert.Empty(t, got)
	assert.Equal(t, 0, catalog.calls)
}
