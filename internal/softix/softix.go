// Package softix provides a Softix box-office API client abstracted behind
// capability interfaces for testability.
package softix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/softix-tools/softix-cli/pkg/types"
)

const defaultBaseURL = "https://api.softix.example.com"

// AuthClient exchanges client credentials for a bearer token.
type AuthClient interface {
	Authenticate(ctx context.Context, clientID, secret string) (*domain.Token, error)
}

// BasketClient builds baskets and adds offers to existing ones.
type BasketClient interface {
	CreateBasket(ctx context.Context, req CreateBasketRequest) (json.RawMessage, error)
	AddOffer(ctx context.Context, req AddOfferRequest) (json.RawMessage, error)
}

// OrderClient purchases baskets into orders and reverses orders.
type OrderClient interface {
	PurchaseBasket(ctx context.Context, req PurchaseRequest) (json.RawMessage, error)
	ReverseOrder(ctx context.Context, sellerCode, orderID string) (string, error)
}

// CustomerClient creates customer records.
type CustomerClient interface {
	CreateCustomer(ctx context.Context, sellerCode string, data json.RawMessage) (json.RawMessage, error)
}

// QueryClient performs read-only lookups. These have no side effects and
// are safe to repeat.
type QueryClient interface {
	PerformanceAvailabilities(ctx context.Context, sellerCode, performanceCode string) (json.RawMessage, error)
	PerformancePrices(ctx context.Context, sellerCode, performanceCode string) (json.RawMessage, error)
	Basket(ctx context.Context, sellerCode, basketID string) (json.RawMessage, error)
	Customer(ctx context.Context, sellerCode, customerID string) (json.RawMessage, error)
	Order(ctx context.Context, sellerCode, orderID string) (json.RawMessage, error)
}

// API is the full capability surface of the Softix service.
type API interface {
	AuthClient
	BasketClient
	OrderClient
	CustomerClient
	QueryClient
}

// Client is a thin HTTP client for the Softix API. All successful response
// bodies are returned verbatim; the remote service owns the shapes.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ API = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer token sent on every request except
// Authenticate.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets the diagnostic logger. Requests are logged at debug.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a new Softix API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one API round trip and returns the response body verbatim.
// Non-2xx responses become a *RemoteError of the given kind carrying the
// service-provided message.
func (c *Client) do(ctx context.Context, kind Kind, method, path string, body any) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.logger.DebugContext(ctx, "softix request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.DebugContext(ctx, "softix response", "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newRemoteError(kind, resp.StatusCode, respBody)
	}

	return respBody, nil
}
