package softix

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	domain "github.com/softix-tools/softix-cli/pkg/types"
)

const tokenPath = "/oauth2/accesstoken" //nolint:gosec // not a credential

// Authenticate exchanges client credentials for a bearer token using the
// OAuth2 client-credentials flow. The full response body is preserved in
// Token.Raw so it can be persisted and replayed verbatim. No retry: a
// failed authentication is terminal for the invocation.
func (c *Client) Authenticate(ctx context.Context, clientID, secret string) (*domain.Token, error) {
	form := url.Values{
		"grant_type": {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+tokenPath,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + secret))
	req.Header.Set("Authorization", "Basic "+creds)

	c.logger.DebugContext(ctx, "softix request", "method", http.MethodPost, "path", tokenPath)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newRemoteError(KindAuth, resp.StatusCode, body)
	}

	var tok domain.Token
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}
	tok.Raw = json.RawMessage(body)

	return &tok, nil
}
