package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softix-tools/softix-cli/internal/validate"
	domain "github.com/softix-tools/softix-cli/pkg/types"
)

func TestDemand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		want       domain.Demand
		wantErr    bool
		errContain string
	}{
		{
			name: "well-formed demand",
			raw:  "GA 2 2",
			want: domain.Demand{PriceTypeCode: "GA", Quantity: 2, Admits: 2},
		},
		{
			name: "zero quantity and admits are allowed",
			raw:  "VIP 0 0",
			want: domain.Demand{PriceTypeCode: "VIP", Quantity: 0, Admits: 0},
		},
		{
			name: "extra whitespace is tolerated",
			raw:  "  GA   4  4 ",
			want: domain.Demand{PriceTypeCode: "GA", Quantity: 4, Admits: 4},
		},
		{
			name:       "too few fields",
			raw:        "GA 2",
			wantErr:    true,
			errContain: "PRICE_TYPE QUANTITY ADMITS",
		},
		{
			name:       "too many fields",
			raw:        "GA 2 2 2",
			wantErr:    true,
			errContain: "PRICE_TYPE QUANTITY ADMITS",
		},
		{
			name:       "empty input",
			raw:        "",
			wantErr:    true,
			errContain: "PRICE_TYPE QUANTITY ADMITS",
		},
		{
			name:       "negative quantity",
			raw:        "GA -1 2",
			wantErr:    true,
			errContain: "quantity",
		},
		{
			name:       "non-integer admits",
			raw:        "GA 2 two",
			wantErr:    true,
			errContain: "admits",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validate.Demand(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				var verr *validate.Error
				assert.ErrorAs(t, err, &verr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    domain.Fee
		wantErr bool
	}{
		{
			name: "well-formed fee",
			raw:  "SVC F1",
			want: domain.Fee{Type: "SVC", Code: "F1"},
		},
		{
			name:    "single field",
			raw:     "SVC",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "three fields",
			raw:     "SVC F1 EXTRA",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validate.Fee(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				var verr *validate.Error
				assert.ErrorAs(t, err, &verr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDemands(t *testing.T) {
	t.Parallel()

	t.Run("at least one demand required", func(t *testing.T) {
		t.Parallel()
		_, err := validate.Demands(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one demand")
	})

	t.Run("order is preserved", func(t *testing.T) {
		t.Parallel()
		demands, err := validate.Demands([]string{"GA 2 2", "VIP 1 1"})
		require.NoError(t, err)
		require.Len(t, demands, 2)
		assert.Equal(t, "GA", demands[0].PriceTypeCode)
		assert.Equal(t, "VIP", demands[1].PriceTypeCode)
	})

	t.Run("one malformed tuple rejects the batch", func(t *testing.T) {
		t.Parallel()
		_, err := validate.Demands([]string{"GA 2 2", "bad"})
		require.Error(t, err)
	})
}

func TestFees(t *testing.T) {
	t.Parallel()

	t.Run("at least one fee required", func(t *testing.T) {
		t.Parallel()
		_, err := validate.Fees(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one fee")
	})

	t.Run("multiple fees parse in order", func(t *testing.T) {
		t.Parallel()
		fees, err := validate.Fees([]string{"SVC F1", "DLV F2"})
		require.NoError(t, err)
		require.Len(t, fees, 2)
		assert.Equal(t, domain.Fee{Type: "SVC", Code: "F1"}, fees[0])
		assert.Equal(t, domain.Fee{Type: "DLV", Code: "F2"}, fees[1])
	})
}
