package sync

import (
	"time"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/shopify"
)

// CatalogClient is the slice of the Shopify client the pipeline needs.
type CatalogClient interface {
	CountProducts() (int, error)
	ListProducts(sinceID int64, limit int) ([]shopify.Product, error)
	CountOrders() (int, error)
	ListOrders(sinceID int64, limit int) ([]shopify.Order, error)
}

const (
	defaultPageSize   = 250
	defaultRetries    = 3
	defaultRetryDelay = 2 * time.Second
)

// Fetcher streams every product or order of a shop using since-id
// pagination. Each call builds a fresh single-pass stream; there is no
// resume across runs.
type Fetcher struct {
	client     CatalogClient
	logger     *logger.Logger
	pageSize   int
	retries    int
	retryDelay time.Duration
}

func NewFetcher(client CatalogClient, logger *logger.Logger) *Fetcher {
	return &Fetcher{
		client:     client,
		logger:     logger,
		pageSize:   defaultPageSize,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

func (f *Fetcher) Products() <-chan shopify.Product {
	return fetchAll(f, "products", f.client.CountProducts, f.client.ListProducts,
		func(p shopify.Product) int64 { return p.ID })
}

func (f *Fetcher) Orders() <-chan shopify.Order {
	return fetchAll(f, "orders", f.client.CountOrders, f.client.ListOrders,
		func(o shopify.Order) int64 { return o.ID })
}

// fetchAll pulls pages in ascending id order and streams the records.
// The up-front count only bounds the number of pages; a short or empty
// page always ends the stream regardless of what the count predicted.
// A page whose retries are exhausted ends the stream without error:
// the caller sees the sequence simply stop.
func fetchAll[T any](f *Fetcher, entity string, count func() (int, error),
	list func(int64, int) ([]T, error), id func(T) int64) <-chan T {

	out := make(chan T)
	go func() {
		defer close(out)

		total, err := count()
		if err != nil {
			f.logger.Error("Failed to count %s: %v", entity, err)
			return
		}
		numPages := (total + f.pageSize - 1) / f.pageSize

		var sinceID int64
		for page := 1; page <= numPages; page++ {
			records, ok := fetchPage(f, entity, list, sinceID)
			if !ok {
				return
			}
			if len(records) == 0 {
				return
			}
			for _, record := range records {
				out <- record
			}
			if len(records) < f.pageSize {
				return
			}
			sinceID = id(records[len(records)-1])
		}
	}()
	return out
}

// fetchPage retries one page with a fixed delay between attempts.
func fetchPage[T any](f *Fetcher, entity string, list func(int64, int) ([]T, error),
	sinceID int64) ([]T, bool) {

	for attempt := 1; attempt <= f.retries; attempt++ {
		records, err := list(sinceID, f.pageSize)
		if err == nil {
			return records, true
		}
		f.logger.Error("Error fetching %s: %v", entity, err)
		time.Sleep(f.retryDelay)
	}
	f.logger.Error("Failed to fetch %s after several retries.", entity)
	return nil, false
}
