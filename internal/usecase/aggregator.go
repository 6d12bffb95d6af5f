package usecase

import "tripflow/internal/domain/trip"

// OfferAggregate is the deduplicated offer list plus the session
// counters derived from it.
type OfferAggregate struct {
	Offers         []trip.FlightOffer
	QuotesReceived int
	QuotesExpected int
}

// AggregateOffers deduplicates offers that reference the same underlying
// quote (an RFQ re-resolved mid-poll can return the same lift twice) and
// computes the counters. Pure function; order is preserved and the first
// occurrence of a duplicate wins.
//
// quotes_expected is the RFQ count: each RFQ is one invited operator,
// whether or not it has produced a priced lift yet. quotes_received
// counts RFQs with at least one terminally priced offer, so an operator
// quoting several lifts still counts once and the counter never exceeds
// quotes_expected.
func AggregateOffers(offers []trip.FlightOffer, rfqCount int) OfferAggregate {
	agg := OfferAggregate{
		Offers:         make([]trip.FlightOffer, 0, len(offers)),
		QuotesExpected: rfqCount,
	}

	seen := make(map[string]struct{}, len(offers))
	pricedRFQs := make(map[string]struct{}, len(offers))
	for _, offer := range offers {
		key := offer.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		agg.Offers = append(agg.Offers, offer)
		if offer.Status.IsPriced() {
			pricedRFQs[trip.Bare(offer.RFQID)] = struct{}{}
		}
	}
	agg.QuotesReceived = len(pricedRFQs)
	return agg
}
