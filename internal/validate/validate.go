// Package validate normalizes and rejects malformed demand and fee inputs
// at the CLI boundary, before anything reaches the network.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	domain "github.com/softix-tools/softix-cli/pkg/types"
)

// Error describes a malformed input parameter.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Demand parses a space-separated "<price_type> <quantity> <admits>" triple.
func Demand(raw string) (domain.Demand, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return domain.Demand{}, &Error{
			Field:  "demand",
			Reason: fmt.Sprintf("expected %q, got %q", "PRICE_TYPE QUANTITY ADMITS", raw),
		}
	}

	quantity, err := strconv.Atoi(fields[1])
	if err != nil || quantity < 0 {
		return domain.Demand{}, &Error{
			Field:  "demand",
			Reason: fmt.Sprintf("quantity must be a non-negative integer, got %q", fields[1]),
		}
	}

	admits, err := strconv.Atoi(fields[2])
	if err != nil || admits < 0 {
		return domain.Demand{}, &Error{
			Field:  "demand",
			Reason: fmt.Sprintf("admits must be a non-negative integer, got %q", fields[2]),
		}
	}

	return domain.Demand{
		PriceTypeCode: fields[0],
		Quantity:      quantity,
		Admits:        admits,
	}, nil
}

// Demands parses each raw demand tuple and requires at least one.
func Demands(raw []string) ([]domain.Demand, error) {
	if len(raw) == 0 {
		return nil, &Error{Field: "demand", Reason: "at least one demand is required"}
	}

	demands := make([]domain.Demand, 0, len(raw))
	for _, r := range raw {
		d, err := Demand(r)
		if err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}
	return demands, nil
}

// Fee parses a space-separated "<type> <code>" pair.
func Fee(raw string) (domain.Fee, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return domain.Fee{}, &Error{
			Field:  "fee",
			Reason: fmt.Sprintf("expected %q, got %q", "TYPE CODE", raw),
		}
	}

	return domain.Fee{Type: fields[0], Code: fields[1]}, nil
}

// Fees parses each raw fee pair and requires at least one.
func Fees(raw []string) ([]domain.Fee, error) {
	if len(raw) == 0 {
		return nil, &Error{Field: "fee", Reason: "at least one fee is required"}
	}

	fees := make([]domain.Fee, 0, len(raw))
	for _, r := range raw {
		f, err := Fee(r)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, nil
}
