// Package tokenfile persists authenticate responses to disk and loads them
// back for later invocations. The file content is the verbatim remote
// response; only access_token is interpreted client-side.
package tokenfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	domain "github.com/softix-tools/softix-cli/pkg/types"
)

// ErrDestinationExists is returned when the write destination already
// exists. Tokens are never silently overwritten.
var ErrDestinationExists = errors.New("destination already exists")

// Load reads and parses a token file. A missing or unreadable file and
// invalid JSON are local failures detected before any network call.
func Load(path string) (*domain.Token, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var tok domain.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parsing token file %s: %w", path, err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token file %s has no access_token", path)
	}

	tok.Raw = json.RawMessage(data)
	return &tok, nil
}

// Write persists the token's raw authenticate response to a brand-new file.
// An existing destination fails with ErrDestinationExists and nothing is
// written.
func Write(path string, tok *domain.Token) error {
	data := tok.Raw
	if data == nil {
		var err error
		data, err = json.Marshal(tok)
		if err != nil {
			return fmt.Errorf("encoding token: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrDestinationExists)
		}
		return fmt.Errorf("creating token file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing token file: %w", err)
	}
	return f.Close()
}

// CheckDestination reports a collision eagerly so create-token can fail
// before it spends a network call authenticating.
func CheckDestination(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrDestinationExists)
	}
	return nil
}
