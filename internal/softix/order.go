package softix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// PurchaseRequest converts a basket into an order with exactly one call.
type PurchaseRequest struct {
	SellerCode string
	BasketID   string
	CustomerID string
}

type purchasePayload struct {
	CustomerID string `json:"customerId,omitempty"`
}

// PurchaseBasket purchases a basket and returns the resulting order
// verbatim.
func (c *Client) PurchaseBasket(ctx context.Context, req PurchaseRequest) (json.RawMessage, error) {
	path := "/" + url.PathEscape(req.SellerCode) +
		"/baskets/" + url.PathEscape(req.BasketID) + "/purchase"
	return c.do(ctx, KindOrder, http.MethodPost, path, purchasePayload{CustomerID: req.CustomerID})
}

// ReverseOrder reverses an order. One call, one outcome: the client makes
// no compensating attempt if the reversal partially succeeds remotely. The
// service's response body is returned as-is; it is not always JSON.
func (c *Client) ReverseOrder(ctx context.Context, sellerCode, orderID string) (string, error) {
	path := "/" + url.PathEscape(sellerCode) +
		"/orders/" + url.PathEscape(orderID) + "/reverse"
	body, err := c.do(ctx, KindReversal, http.MethodPost, path, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}
