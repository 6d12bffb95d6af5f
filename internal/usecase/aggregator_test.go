//go:build unit

package usecase_test

import (
	"testing"

	"tripflow/internal/domain/trip"
	"tripflow/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAggregateOffers(t *testing.T) {
	offer := func(quoteID, rfqID string, liftIndex int, status trip.OfferStatus) trip.FlightOffer {
		return trip.FlightOffer{
			QuoteID:   quoteID,
			RFQID:     rfqID,
			LiftIndex: liftIndex,
			Status:    status,
		}
	}

	t.Run("counters from priced statuses", func(t *testing.T) {
		offers := []trip.FlightOffer{
			offer("aquote-1", "arfq-1", 0, trip.StatusQuoted),
			offer("aquote-2", "arfq-2", 0, trip.StatusAccepted),
			offer("", "arfq-3", 0, trip.StatusUnanswered),
			offer("aquote-4", "arfq-4", 0, trip.StatusDeclined),
		}

		agg := usecase.AggregateOffers(offers, 5)
		assert.Len(t, agg.Offers, 4)
		assert.Equal(t, 2, agg.QuotesReceived)
		assert.Equal(t, 5, agg.QuotesExpected)
	})

	t.Run("same quote in both identifier forms collapses", func(t *testing.T) {
		offers := []trip.FlightOffer{
			offer("aquote-390825418", "arfq-1", 0, trip.StatusQuoted),
			offer("390825418", "arfq-1", 0, trip.StatusQuoted),
		}

		agg := usecase.AggregateOffers(offers, 1)
		assert.Len(t, agg.Offers, 1)
		assert.Equal(t, 1, agg.QuotesReceived)
		// First occurrence wins.
		assert.Equal(t, "aquote-390825418", agg.Offers[0].QuoteID)
	})

	t.Run("multiple priced lifts on one rfq count once", func(t *testing.T) {
		offers := []trip.FlightOffer{
			offer("aquote-1", "arfq-1", 0, trip.StatusQuoted),
			offer("aquote-2", "arfq-1", 1, trip.StatusQuoted),
			offer("aquote-3", "arfq-2", 0, trip.StatusAccepted),
		}

		agg := usecase.AggregateOffers(offers, 2)
		assert.Len(t, agg.Offers, 3)
		assert.Equal(t, 2, agg.QuotesReceived)
		assert.LessOrEqual(t, agg.QuotesReceived, agg.QuotesExpected)
	})

	t.Run("quoteless offers keyed by rfq and lift index", func(t *testing.T) {
		offers := []trip.FlightOffer{
			offer("", "arfq-1", 0, trip.StatusQuoted),
			offer("", "arfq-1", 1, trip.StatusQuoted),
			offer("", "arfq-1", 0, trip.StatusQuoted),
		}

		agg := usecase.AggregateOffers(offers, 1)
		assert.Len(t, agg.Offers, 2)
	})

	t.Run("source order preserved", func(t *testing.T) {
		offers := []trip.FlightOffer{
			offer("aquote-3", "arfq-3", 0, trip.StatusQuoted),
			offer("aquote-1", "arfq-1", 0, trip.StatusQuoted),
			offer("aquote-2", "arfq-2", 0, trip.StatusQuoted),
		}

		agg := usecase.AggregateOffers(offers, 3)
		got := make([]string, len(agg.Offers))
		for i, o := range agg.Offers {
			got[i] = o.QuoteID
		}
		assert.Equal(t, []string{"aquote-3", "aquote-1", "aquote-2"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		agg := usecase.AggregateOffers(nil, 0)
		assert.Empty(t, agg.Offers)
		assert.Zero(t, agg.QuotesReceived)
		assert.Zero(t, agg.QuotesExpected)
	})
}
