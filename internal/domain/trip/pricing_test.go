//go:build unit

package trip_test

import (
	"testing"

	"tripflow/internal/domain/trip"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLiftPrice(t *testing.T) {
	usd := func(amount float64) trip.Money {
		return trip.Money{Amount: amount, Currency: "USD"}
	}

	tests := []struct {
		name   string
		fields map[string]trip.Money
		want   trip.Money
		wantOK bool
	}{
		{
			name:   "sellerPrice wins over all others",
			fields: map[string]trip.Money{"sellerPrice": usd(10000), "totalPrice": usd(9000), "price": usd(8000)},
			want:   usd(10000),
			wantOK: true,
		},
		{
			name:   "totalPrice next in priority",
			fields: map[string]trip.Money{"totalPrice": usd(9000), "quotedPrice": usd(8500)},
			want:   usd(9000),
			wantOK: true,
		},
		{
			name:   "quotedPrice before plain price",
			fields: map[string]trip.Money{"quotedPrice": usd(8500), "price": usd(8000)},
			want:   usd(8500),
			wantOK: true,
		},
		{
			name:   "plain price as last resort",
			fields: map[string]trip.Money{"price": usd(8000)},
			want:   usd(8000),
			wantOK: true,
		},
		{
			name:   "zero amount is not a usable price",
			fields: map[string]trip.Money{"sellerPrice": usd(0), "totalPrice": usd(12500)},
			want:   usd(12500),
			wantOK: true,
		},
		{
			name:   "all fields zero",
			fields: map[string]trip.Money{"sellerPrice": usd(0), "price": usd(0)},
			wantOK: false,
		},
		{
			name:   "no price fields at all",
			fields: map[string]trip.Money{},
			wantOK: false,
		},
		{
			name:   "unknown field names ignored",
			fields: map[string]trip.Money{"grandTotal": usd(99999)},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := trip.NormalizeLiftPrice(tt.fields)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}
