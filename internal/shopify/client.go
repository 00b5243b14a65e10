package shopify

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
)

// Client talks to the Shopify Admin REST API for one shop. It is
// constructed per sync run and passed around explicitly; there is no
// ambient session state.
type Client struct {
	shopHandle  string
	apiVersion  string
	accessToken string
	baseURL     string
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(shopHandle, apiVersion, accessToken string, logger *logger.Logger) *Client {
	return &Client{
		shopHandle:  shopHandle,
		apiVersion:  apiVersion,
		accessToken: accessToken,
		baseURL:     fmt.Sprintf("https://%s.myshopify.com/admin/api/%s", shopHandle, apiVersion),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a local server.
func NewClientWithBaseURL(baseURL string, logger *logger.Logger) *Client {
	c := NewClient("test", "2024-04", "", logger)
	c.baseURL = baseURL
	return c
}

// CountProducts returns the total number of products in the shop.
func (c *Client) CountProducts() (int, error) {
	return c.count("products")
}

// CountOrders returns the total number of orders in the shop.
func (c *Client) CountOrders() (int, error) {
	return c.count("orders")
}

func (c *Client) count(resource string) (int, error) {
	var countResp CountResponse
	url := fmt.Sprintf("%s/%s/count.json", c.baseURL, resource)
	if err := c.get(url, nil, &countResp); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", resource, err)
	}
	return countResp.Count, nil
}

// ListProducts fetches one page of products with id greater than
// sinceID, ordered by ascending id.
func (c *Client) ListProducts(sinceID int64, limit int) ([]Product, error) {
	var productsResp ProductsResponse
	url := fmt.Sprintf("%s/products.json", c.baseURL)
	if err := c.get(url, pageQuery(sinceID, limit), &productsResp); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return productsResp.Products, nil
}

// ListOrders fetches one page of orders with id greater than sinceID,
// ordered by ascending id.
func (c *Client) ListOrders(sinceID int64, limit int) ([]Order, error) {
	var ordersResp OrdersResponse
	url := fmt.Sprintf("%s/orders.json", c.baseURL)
	if err := c.get(url, pageQuery(sinceID, limit), &ordersResp); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return ordersResp.Orders, nil
}

func pageQuery(sinceID int64, limit int) map[string]string {
	return map[string]string{
		"since_id": strconv.FormatInt(sinceID, 10),
		"limit":    strconv.Itoa(limit),
	}
}

func (c *Client) get(url string, query map[string]string, out interface{}) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Add authentication header
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	q := req.URL.Query()
	for key, value := range query {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
