package softix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CreateCustomer creates a customer record from caller-supplied JSON. The
// payload has already been validated as JSON at the CLI boundary; its
// fields are owned by the remote service.
func (c *Client) CreateCustomer(ctx context.Context, sellerCode string, data json.RawMessage) (json.RawMessage, error) {
	path := "/" + url.PathEscape(sellerCode) + "/customers"
	return c.do(ctx, KindCustomer, http.MethodPost, path, data)
}
