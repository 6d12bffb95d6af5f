//go:build unit

package avinode_test

import (
	"encoding/json"
	"testing"
	"time"

	"tripflow/internal/infra/avinode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkUnmarshal(t *testing.T) {
	t.Run("plain string", func(t *testing.T) {
		var l avinode.Link
		require.NoError(t, json.Unmarshal([]byte(`"https://sandbox.avinode.com/t/1"`), &l))
		assert.Equal(t, "https://sandbox.avinode.com/t/1", l.Href)
	})

	t.Run("href object", func(t *testing.T) {
		var l avinode.Link
		require.NoError(t, json.Unmarshal([]byte(`{"href": "https://sandbox.avinode.com/t/1"}`), &l))
		assert.Equal(t, "https://sandbox.avinode.com/t/1", l.Href)
	})
}

func TestSegmentParsing(t *testing.T) {
	seg := avinode.Segment{
		DateTime: avinode.SegmentTime{Date: "2026-10-15", Time: "14:00"},
		PaxCount: "6",
	}
	assert.Equal(t, 6, seg.PassengerCount())
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), seg.DepartureDate())

	malformed := avinode.Segment{PaxCount: "six", DateTime: avinode.SegmentTime{Date: "15/10/2026"}}
	assert.Zero(t, malformed.PassengerCount())
	assert.True(t, malformed.DepartureDate().IsZero())
}

func TestRFQIsLinkOnly(t *testing.T) {
	assert.True(t, avinode.RFQPayload{ID: "arfq-1"}.IsLinkOnly())
	assert.False(t, avinode.RFQPayload{ID: "arfq-1", DisplayStatus: "Quoted"}.IsLinkOnly())
	assert.False(t, avinode.RFQPayload{ID: "arfq-1", SellerCompany: avinode.Seller{Name: "Alpha"}}.IsLinkOnly())
}

func TestLiftPriceFields(t *testing.T) {
	lift := avinode.LiftPayload{
		SellerPrice: &avinode.PricePayload{Amount: 10000, Currency: "USD"},
		Price:       &avinode.PricePayload{Amount: 9000, Currency: "USD"},
	}
	fields := lift.PriceFields()
	assert.Len(t, fields, 2)
	assert.Equal(t, 10000.0, fields["sellerPrice"].Amount)
	assert.Equal(t, 9000.0, fields["price"].Amount)

	assert.Empty(t, avinode.LiftPayload{}.PriceFields())
}
