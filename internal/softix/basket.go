package softix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	domain "github.com/softix-tools/softix-cli/pkg/types"
)

// CreateBasketRequest carries everything needed to build a new basket.
// Demands and fees are forwarded to the service exactly as given.
type CreateBasketRequest struct {
	SellerCode      string
	PerformanceCode string
	Section         string
	Demands         []domain.Demand
	Fees            []domain.Fee
	CustomerID      string
}

// AddOfferRequest adds demands and fees to an existing basket. Whether the
// basket still accepts offers is decided entirely by the remote service.
type AddOfferRequest struct {
	SellerCode      string
	BasketID        string
	PerformanceCode string
	Section         string
	Demands         []domain.Demand
	Fees            []domain.Fee
}

type basketPayload struct {
	PerformanceCode string          `json:"performanceCode"`
	Section         string          `json:"section"`
	Demands         []domain.Demand `json:"demands"`
	Fees            []domain.Fee    `json:"fees"`
	CustomerID      string          `json:"customerId,omitempty"`
}

// CreateBasket builds a basket for a performance and returns the remote
// representation verbatim. No partial basket state is cached locally.
func (c *Client) CreateBasket(ctx context.Context, req CreateBasketRequest) (json.RawMessage, error) {
	path := "/" + url.PathEscape(req.SellerCode) + "/baskets"
	payload := basketPayload{
		PerformanceCode: req.PerformanceCode,
		Section:         req.Section,
		Demands:         req.Demands,
		Fees:            req.Fees,
		CustomerID:      req.CustomerID,
	}
	return c.do(ctx, KindBasket, http.MethodPost, path, payload)
}

// AddOffer batches further demands and fees into an existing basket with a
// single call.
func (c *Client) AddOffer(ctx context.Context, req AddOfferRequest) (json.RawMessage, error) {
	path := "/" + url.PathEscape(req.SellerCode) +
		"/baskets/" + url.PathEscape(req.BasketID) + "/offers"
	payload := basketPayload{
		PerformanceCode: req.PerformanceCode,
		Section:         req.Section,
		Demands:         req.Demands,
		Fees:            req.Fees,
	}
	return c.do(ctx, KindBasket, http.MethodPost, path, payload)
}
