package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tripflow/internal/domain/trip"
	"tripflow/internal/infra/avinode"
	"tripflow/internal/pkg/errs"

	"golang.org/x/sync/errgroup"

	cr "github.com/cockroachdb/errors"
)

// MarketplaceGateway is the low-level fetch surface the resolver needs.
type MarketplaceGateway interface {
	GetTrip(ctx context.Context, id string) (*avinode.TripPayload, error)
	GetRFQ(ctx context.Context, id string) (*avinode.RFQPayload, error)
	GetQuote(ctx context.Context, id string) (*avinode.QuotePayload, error)
}

// ResolveResult is one full resolution pass over a trip. Offers preserve
// source order (RFQ order on the trip, then lift order within the RFQ);
// any sorting is the consumer's concern.
type ResolveResult struct {
	Trip        *trip.Trip
	Offers      []trip.FlightOffer
	TotalQuotes int
	DeepLink    *string
	Warnings    []string
}

type QuoteResolver interface {
	ResolveTripOffers(ctx context.Context, tripID string) (*ResolveResult, error)
}

type quoteResolverImpl struct {
	gateway MarketplaceGateway
	logger  *slog.Logger
}

func NewQuoteResolver(gateway MarketplaceGateway, logger *slog.Logger) QuoteResolver {
	return &quoteResolverImpl{
		gateway: gateway,
		logger:  logger,
	}
}

func (r *quoteResolverImpl) ResolveTripOffers(ctx context.Context, tripID string) (*ResolveResult, error) {
	payload, err := r.fetchTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	rfqs, hydrateWarnings := r.hydrateRFQs(ctx, payload.RFQs)

	offers, resolveWarnings, err := r.resolveLifts(ctx, payload, rfqs)
	if err != nil {
		return nil, err
	}

	result := &ResolveResult{
		Trip:        toDomainTrip(payload, rfqs),
		Offers:      offers,
		TotalQuotes: len(rfqs),
		DeepLink:    ExtractDeepLink(payload),
		Warnings:    append(hydrateWarnings, resolveWarnings...),
	}
	return result, nil
}

// fetchTrip tries the caller's identifier form first, then the alternate.
// The upstream is inconsistent about which form an endpoint expects.
func (r *quoteResolverImpl) fetchTrip(ctx context.Context, tripID string) (*avinode.TripPayload, error) {
	forms := trip.TripIDForms(tripID)

	var lastErr error
	for i, form := range forms {
		payload, err := r.gateway.GetTrip(ctx, form)
		if err == nil {
			if i > 0 {
				r.logger.Warn("trip resolved via alternate identifier form",
					"requested", forms[0], "resolved", form)
			}
			return payload, nil
		}
		if cr.Is(err, avinode.ErrAuth) {
			return nil, errs.Mark(err, errs.ErrUpstreamAuth)
		}
		if !cr.Is(err, avinode.ErrNotFound) {
			return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
		}
		lastErr = err
	}

	return nil, errs.Mark(errs.Wrap(lastErr, "trip not found under any identifier form"), errs.ErrTripNotFound)
}

// hydrateRFQs fetches the RFQs that appeared on the trip as bare links.
// A failed hydration drops that RFQ's lifts but keeps the slot counted.
func (r *quoteResolverImpl) hydrateRFQs(ctx context.Context, rfqs []avinode.RFQPayload) ([]avinode.RFQPayload, []string) {
	var warnings []string
	hydrated := make([]avinode.RFQPayload, len(rfqs))
	for i, rfq := range rfqs {
		if !rfq.IsLinkOnly() {
			hydrated[i] = rfq
			continue
		}

		full, err := r.fetchRFQ(ctx, rfq.ID)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("rfq %s could not be hydrated: %v", rfq.ID, err))
			r.logger.Warn("rfq hydration failed", "rfq_id", rfq.ID, "error", err.Error())
			hydrated[i] = rfq
			continue
		}
		hydrated[i] = *full
	}
	return hydrated, warnings
}

func (r *quoteResolverImpl) fetchRFQ(ctx context.Context, rfqID string) (*avinode.RFQPayload, error) {
	var lastErr error
	for _, form := range trip.RFQIDForms(rfqID) {
		payload, err := r.gateway.GetRFQ(ctx, form)
		if err == nil {
			return payload, nil
		}
		if !cr.Is(err, avinode.ErrNotFound) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// liftSlot pins one lift to its source position so concurrent fetches
// slot back in order rather than appending in completion order.
type liftSlot struct {
	rfqIndex  int
	liftIndex int
}

// resolveLifts fans out quote fetches across all lifts and fans back in,
// preserving source order. One unreachable quote never blanks out the
// other operators' offers.
func (r *quoteResolverImpl) resolveLifts(ctx context.Context, payload *avinode.TripPayload, rfqs []avinode.RFQPayload) ([]trip.FlightOffer, []string, error) {
	var slots []liftSlot
	for ri, rfq := range rfqs {
		for li := range rfq.Lifts {
			slots = append(slots, liftSlot{rfqIndex: ri, liftIndex: li})
		}
	}

	results := make([]*trip.FlightOffer, len(slots))
	warnings := make([]string, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		g.Go(func() error {
			offer, warning := r.resolveOneLift(gctx, payload, rfqs[slot.rfqIndex], slot.liftIndex)
			results[i] = offer
			warnings[i] = warning
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		// Caller's deadline passed while fetches were in flight; discard
		// the partial pass rather than committing it.
		return nil, nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	offers := make([]trip.FlightOffer, 0, len(slots))
	var kept []string
	for i := range slots {
		if results[i] != nil {
			offers = append(offers, *results[i])
		}
		if warnings[i] != "" {
			kept = append(kept, warnings[i])
		}
	}
	return offers, kept, nil
}

// resolveOneLift produces a FlightOffer for a single lift, or a warning
// when its pricing is unreachable. Per-lift failures are recovered
// silently: counted, not raised.
func (r *quoteResolverImpl) resolveOneLift(ctx context.Context, payload *avinode.TripPayload, rfq avinode.RFQPayload, liftIndex int) (*trip.FlightOffer, string) {
	lift := rfq.Lifts[liftIndex]

	offer := trip.FlightOffer{
		RFQID:            rfq.ID,
		LiftIndex:        liftIndex,
		OperatorName:     rfq.SellerCompany.Name,
		AircraftType:     lift.Aircraft.Type,
		AircraftCategory: lift.Aircraft.Category,
		TailNumber:       lift.Aircraft.TailNumber,
		ResponseLatency:  responseLatency(payload, rfq),
		Status:           normalizeStatus(rfq.DisplayStatus),
	}

	if price, ok := trip.NormalizeLiftPrice(lift.PriceFields()); ok {
		offer.Price = price.Amount
		offer.Currency = price.Currency
		if lift.Quote != nil {
			offer.QuoteID = lift.Quote.ID
		}
		return &offer, ""
	}

	if lift.Quote == nil || lift.Quote.ID == "" {
		// Operator has not priced this lift yet; expected while responses
		// are still trickling in.
		return nil, ""
	}

	quote, err := r.fetchQuote(ctx, lift.Quote.ID)
	if err != nil {
		r.logger.Warn("quote unresolvable, skipping lift",
			"rfq_id", rfq.ID, "lift_index", liftIndex, "quote_id", lift.Quote.ID, "error", err.Error())
		return nil, fmt.Sprintf("quote %s unresolvable for rfq %s lift %d", lift.Quote.ID, rfq.ID, liftIndex)
	}

	offer.QuoteID = quote.ID
	if offer.QuoteID == "" {
		offer.QuoteID = lift.Quote.ID
	}
	offer.Price = quote.SellerPrice.Amount
	offer.Currency = quote.SellerPrice.Currency
	if quote.Tail != nil && quote.Tail.TailNumber != "" {
		offer.TailNumber = quote.Tail.TailNumber
	}
	if quote.UpdatedAt != nil && payload.CreatedAt != nil {
		offer.ResponseLatency = quote.UpdatedAt.Sub(*payload.CreatedAt)
	}
	return &offer, ""
}

// fetchQuote tries the authoritative prefixed form first, the bare
// numeric form second.
func (r *quoteResolverImpl) fetchQuote(ctx context.Context, quoteID string) (*avinode.QuotePayload, error) {
	forms := trip.QuoteIDForms(quoteID)

	var lastErr error
	for i, form := range forms {
		payload, err := r.gateway.GetQuote(ctx, form)
		if err == nil {
			if i > 0 {
				r.logger.Warn("quote resolved via alternate identifier form",
					"requested", forms[0], "resolved", form)
			}
			return payload, nil
		}
		if !cr.Is(err, avinode.ErrNotFound) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func responseLatency(payload *avinode.TripPayload, rfq avinode.RFQPayload) time.Duration {
	if rfq.RespondedAt == nil || payload.CreatedAt == nil {
		return 0
	}
	return rfq.RespondedAt.Sub(*payload.CreatedAt)
}

var statusAliases = map[string]trip.OfferStatus{
	"unanswered": trip.StatusUnanswered,
	"quoted":     trip.StatusQuoted,
	"accepted":   trip.StatusAccepted,
	"declined":   trip.StatusDeclined,
	"expired":    trip.StatusExpired,
}

func normalizeStatus(displayStatus string) trip.OfferStatus {
	if s, ok := statusAliases[strings.ToLower(displayStatus)]; ok {
		return s
	}
	return trip.StatusUnanswered
}

func toDomainTrip(payload *avinode.TripPayload, rfqs []avinode.RFQPayload) *trip.Trip {
	seg := payload.FirstSegment()
	t := &trip.Trip{
		ID:               payload.ID,
		DisplayID:        payload.DisplayID,
		DepartureAirport: seg.StartAirport.ICAO,
		ArrivalAirport:   seg.EndAirport.ICAO,
		DepartureDate:    seg.DepartureDate(),
		PassengerCount:   seg.PassengerCount(),
	}
	if payload.CreatedAt != nil {
		t.CreatedAt = *payload.CreatedAt
	}

	for _, rfq := range rfqs {
		domainRFQ := trip.RFQ{
			ID:          rfq.ID,
			SellerName:  rfq.SellerCompany.Name,
			Status:      normalizeStatus(rfq.DisplayStatus),
			RespondedAt: rfq.RespondedAt,
		}
		for _, lift := range rfq.Lifts {
			domainLift := trip.Lift{
				ID:               lift.ID,
				AircraftType:     lift.Aircraft.Type,
				AircraftCategory: lift.Aircraft.Category,
				TailNumber:       lift.Aircraft.TailNumber,
			}
			if price, ok := trip.NormalizeLiftPrice(lift.PriceFields()); ok {
				domainLift.InlinePrice = &price
			}
			if lift.Quote != nil {
				domainLift.QuoteID = lift.Quote.ID
			}
			domainRFQ.Lifts = append(domainRFQ.Lifts, domainLift)
		}
		t.RFQs = append(t.RFQs, domainRFQ)
	}
	return t
}
