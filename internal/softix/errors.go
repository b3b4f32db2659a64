package softix

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies which workflow step a remote failure belongs to.
type Kind string

// Remote failure kinds.
const (
	KindAuth     Kind = "auth"
	KindBasket   Kind = "basket"
	KindOrder    Kind = "order"
	KindReversal Kind = "reversal"
	KindLookup   Kind = "lookup"
	KindCustomer Kind = "customer"
)

// RemoteError is a rejection or failure reported by the Softix service.
// Error() returns the service-provided message verbatim so commands can
// surface it unchanged.
type RemoteError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// IsKind reports whether err is a *RemoteError of the given kind.
func IsKind(err error, kind Kind) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Kind == kind
}

// newRemoteError extracts the service message from an error response body.
// Softix error payloads carry a "message" field; anything else falls back
// to the raw body.
func newRemoteError(kind Kind, status int, body []byte) *RemoteError {
	var payload struct {
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = fmt.Sprintf("softix API error (status %d)", status)
	}

	return &RemoteError{Kind: kind, Status: status, Message: msg}
}
