package usecase

import (
	"context"
	"fmt"

	"tripflow/internal/domain/trip"
	"tripflow/internal/domain/workflow"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/usecase/readmodel"
)

// ResolveTripResult is the inbound contract: the deduplicated offer list,
// the expected-quote total, accumulated partial-resolution warnings, and
// the session state after the observation was applied.
type ResolveTripResult struct {
	Offers      []trip.FlightOffer `json:"offers"`
	TotalQuotes int                `json:"totalQuotes"`
	Warnings    []string           `json:"warnings,omitempty"`
	Session     *readmodel.TripSessionRM
}

// OfferSelector addresses one resolved offer: by quote identifier when
// the lift carries one, otherwise by the (RFQ id, lift index) pair —
// inline-priced lifts never get a quote id, so the pair is the only
// handle they have. Identifier matching is form-insensitive.
type OfferSelector struct {
	QuoteID   string
	RFQID     string
	LiftIndex int
}

func (s OfferSelector) matches(o trip.FlightOffer) bool {
	if s.QuoteID != "" {
		return o.QuoteID != "" && trip.Bare(o.QuoteID) == trip.Bare(s.QuoteID)
	}
	return s.RFQID != "" && trip.Bare(o.RFQID) == trip.Bare(s.RFQID) && o.LiftIndex == s.LiftIndex
}

func (s OfferSelector) String() string {
	if s.QuoteID != "" {
		return s.QuoteID
	}
	return fmt.Sprintf("%s#%d", s.RFQID, s.LiftIndex)
}

type TripFlowUseCase interface {
	ResolveTripOffers(ctx context.Context, tripID string) (*ResolveTripResult, error)
	GetWorkflowState(ctx context.Context, tripID string) (*readmodel.TripSessionRM, error)
	ResetWorkflow(ctx context.Context, tripID string, toStep string) (*readmodel.TripSessionRM, error)
	SelectOffer(ctx context.Context, tripID string, selector OfferSelector) (*readmodel.TripSessionRM, error)
}

type tripFlowUseCaseImpl struct {
	resolver QuoteResolver
	tracker  WorkflowTracker
}

func NewTripFlowUseCase(resolver QuoteResolver, tracker WorkflowTracker) TripFlowUseCase {
	return &tripFlowUseCaseImpl{
		resolver: resolver,
		tracker:  tracker,
	}
}

// ResolveTripOffers runs one full resolution pass and commits the
// observation. Nothing is persisted until the pass completes, so an
// abandoned resolution leaves the session untouched.
func (u *tripFlowUseCaseImpl) ResolveTripOffers(ctx context.Context, tripID string) (*ResolveTripResult, error) {
	resolved, err := u.resolver.ResolveTripOffers(ctx, tripID)
	if err != nil {
		return nil, err
	}

	agg := AggregateOffers(resolved.Offers, resolved.TotalQuotes)

	session, err := u.tracker.Observe(ctx, tripID, Observation{
		Trip: resolved.Trip,
		Signals: workflow.Signals{
			TripExists:     true,
			RFQCount:       agg.QuotesExpected,
			QuotesReceived: agg.QuotesReceived,
			DeepLink:       resolved.DeepLink,
		},
	})
	if err != nil {
		return nil, err
	}

	return &ResolveTripResult{
		Offers:      agg.Offers,
		TotalQuotes: agg.QuotesExpected,
		Warnings:    resolved.Warnings,
		Session:     session,
	}, nil
}

func (u *tripFlowUseCaseImpl) GetWorkflowState(ctx context.Context, tripID string) (*readmodel.TripSessionRM, error) {
	return u.tracker.GetState(ctx, tripID)
}

func (u *tripFlowUseCaseImpl) ResetWorkflow(ctx context.Context, tripID string, toStep string) (*readmodel.TripSessionRM, error) {
	step, err := workflow.ParseStep(toStep)
	if err != nil {
		return nil, err
	}
	return u.tracker.Reset(ctx, tripID, step)
}

// SelectOffer re-resolves the trip, locates the chosen offer and records
// it. Re-resolving instead of trusting the caller's payload keeps the
// persisted pricing snapshot tied to what the upstream actually returned.
func (u *tripFlowUseCaseImpl) SelectOffer(ctx context.Context, tripID string, selector OfferSelector) (*readmodel.TripSessionRM, error) {
	resolved, err := u.resolver.ResolveTripOffers(ctx, tripID)
	if err != nil {
		return nil, err
	}

	agg := AggregateOffers(resolved.Offers, resolved.TotalQuotes)

	for _, offer := range agg.Offers {
		if selector.matches(offer) {
			return u.tracker.CommitSelection(ctx, tripID, offer)
		}
	}

	return nil, errs.Mark(errs.Newf("offer %s not among resolved offers", selector), errs.ErrOfferNotFound)
}
