// Package domain defines the core types that flow through the Softix
// transaction workflow: credentials, tokens, demands, fees, baskets and
// orders.
package domain

import "encoding/json"

// Credential identifies this client to the Softix service. It is supplied
// once at startup and never mutated.
type Credential struct {
	ClientID   string
	Secret     string
	SellerCode string
}

// Token is the opaque credential returned by the authenticate endpoint.
// The client performs no expiry bookkeeping; a token is treated as valid
// until the remote service rejects it.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`

	// Raw preserves the exact authenticate response so the token can be
	// persisted and replayed without losing fields this client does not
	// interpret.
	Raw json.RawMessage `json:"-"`
}

// Demand requests a quantity of seats of a given price type.
type Demand struct {
	PriceTypeCode string `json:"priceTypeCode"`
	Quantity      int    `json:"quantity"`
	Admits        int    `json:"admits"`
}

// Fee is a surcharge descriptor attached to a basket or offer.
type Fee struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// Basket is a typed view of a remote basket. Remote responses are passed
// through verbatim by the client; this type exists for structural checks
// on decoded responses.
type Basket struct {
	ID              string   `json:"id"`
	PerformanceCode string   `json:"performanceCode"`
	Section         string   `json:"section,omitempty"`
	Demands         []Demand `json:"demands,omitempty"`
	Fees            []Fee    `json:"fees,omitempty"`
	CustomerID      string   `json:"customerId,omitempty"`
}

// Order is a typed view of a purchased basket. Reversal is a one-way
// transition owned entirely by the remote service.
type Order struct {
	ID         string `json:"id"`
	BasketID   string `json:"basketId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
	Status     string `json:"status,omitempty"`
}
