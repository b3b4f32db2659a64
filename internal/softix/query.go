package softix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// PerformanceAvailabilities returns availability information for a
// performance.
func (c *Client) PerformanceAvailabilities(ctx context.Context, sellerCode, performanceCode string) (json.RawMessage, error) {
	path := "/" + url.PathEscape(sellerCode) +
		"/performances/" + url.PathEscape(performanceCode) + "/availabilities"
	return c.do(ctx, KindLookup, http.MethodGet, path, nil)
}

// PerformancePrices returns price information for a performance.
func (c *Client) PerformancePrices(ctx context.Context, sellerCode, performanceCode string) (json.RawMessage, error) {
	path := "/" + url.PathEscape(sellerCode) +
		"/performances/" + url.PathEscape(performanceCode) + "/prices"
	return c.do(ctx, KindLookup, http.MethodGet, path, nil)
}

// Basket returns a basket by id. A purchased basket remains referenceable
// for inspection.
func (c *Client) Basket(ctx context.Context, sellerCode, basketID string) (json.RawMessage, error) {
	path := "/" + url.PathEscape(sellerCode) + "/baskets/" + url.PathEscape(basketID)
	return c.do(ctx, KindLookup, http.MethodGet, path, nil)
}

// Customer returns a customer record by id.
func (c *Client) Customer(ctx context.Context, sellerCode, customerID string) (json.RawMessage, error) {
	path := "/" + url.PathEscape(sellerCode) + "/customers/" + url.PathEscape(customerID)
	return c.do(ctx, KindLookup, http.MethodGet, path, nil)
}

// Order returns an order by id.
func (c *Client) Order(ctx context.Context, sellerCode, orderID string) (json.RawMessage, error) {
	path := "/" + url.PathEscape(sellerCode) + "/orders/" + url.PathEscape(orderID)
	return c.do(ctx, KindLookup, http.MethodGet, path, nil)
}
