package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tripflow/internal/domain/trip"
	"tripflow/internal/domain/workflow"
	"tripflow/internal/infra"
	"tripflow/internal/infra/repository"
	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/usecase/readmodel"
)

type TripSessionRepository interface {
	Upsert(ctx context.Context, params repository.UpsertTripSessionParams) (*readmodel.TripSessionRM, error)
	FindByTripID(ctx context.Context, tripID string) (*readmodel.TripSessionRM, error)
	ResetStep(ctx context.Context, tripID string, step workflow.Step) (*readmodel.TripSessionRM, error)
	RecordSelection(ctx context.Context, tripID string, step workflow.Step, selectedOffer []byte) (*readmodel.TripSessionRM, error)
}

// Observation is everything one resolution pass learned about a trip.
type Observation struct {
	Trip    *trip.Trip
	Signals workflow.Signals
}

// WorkflowTracker reconciles a trip's stored workflow position against
// observed data. Persisted writes use the monotonic-join rule, so
// repeated polling is idempotent and concurrent pollers converge.
type WorkflowTracker interface {
	Observe(ctx context.Context, tripID string, obs Observation) (*readmodel.TripSessionRM, error)
	GetState(ctx context.Context, tripID string) (*readmodel.TripSessionRM, error)
	Reset(ctx context.Context, tripID string, to workflow.Step) (*readmodel.TripSessionRM, error)
	CommitSelection(ctx context.Context, tripID string, offer trip.FlightOffer) (*readmodel.TripSessionRM, error)
}

type workflowTrackerImpl struct {
	sessions TripSessionRepository
	logger   *slog.Logger
	clock    clock.Clock
}

func NewWorkflowTracker(sessions TripSessionRepository, logger *slog.Logger, clk clock.Clock) WorkflowTracker {
	return &workflowTrackerImpl{
		sessions: sessions,
		logger:   logger,
		clock:    clk,
	}
}

// workflowSnapshot is the diagnostic record stored in workflow_state.
type workflowSnapshot struct {
	Signals      workflow.Signals `json:"signals"`
	ComputedStep string           `json:"computedStep"`
	ObservedAt   time.Time        `json:"observedAt"`
}

func (t *workflowTrackerImpl) Observe(ctx context.Context, tripID string, obs Observation) (*readmodel.TripSessionRM, error) {
	// Contradictions never fail the observation; the objective signal is
	// authoritative over any cached field.
	for _, c := range obs.Signals.Contradictions() {
		t.logger.Warn("workflow state inconsistency", "trip_id", tripID, "detail", c)
	}

	step := workflow.MinimumAdmissibleStep(obs.Signals)

	snapshot, err := json.Marshal(workflowSnapshot{
		Signals:      obs.Signals,
		ComputedStep: step.String(),
		ObservedAt:   t.clock.Now().UTC(),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	params := repository.UpsertTripSessionParams{
		TripID:         tripID,
		Step:           step,
		QuotesReceived: int32(obs.Signals.QuotesReceived),
		QuotesExpected: int32(obs.Signals.RFQCount),
		DeepLink:       obs.Signals.DeepLink,
		WorkflowState:  snapshot,
	}
	if obs.Trip != nil {
		params.DepartureAirport = obs.Trip.DepartureAirport
		params.ArrivalAirport = obs.Trip.ArrivalAirport
		if !obs.Trip.DepartureDate.IsZero() {
			d := obs.Trip.DepartureDate
			params.DepartureDate = &d
		}
		if obs.Trip.PassengerCount > 0 {
			pax := int32(obs.Trip.PassengerCount)
			params.PassengerCount = &pax
		}
	}

	rm, err := t.sessions.Upsert(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (t *workflowTrackerImpl) GetState(ctx context.Context, tripID string) (*readmodel.TripSessionRM, error) {
	rm, err := t.sessions.FindByTripID(ctx, tripID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// Reset is the explicit administrative transition, the only one allowed
// to move a session backward.
func (t *workflowTrackerImpl) Reset(ctx context.Context, tripID string, to workflow.Step) (*readmodel.TripSessionRM, error) {
	rm, err := t.sessions.ResetStep(ctx, tripID, to)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	t.logger.Info("workflow reset", "trip_id", tripID, "step", to.String())
	return rm, nil
}

// CommitSelection persists the chosen offer verbatim; its shape is the
// pricing input the contract/proposal collaborators consume.
func (t *workflowTrackerImpl) CommitSelection(ctx context.Context, tripID string, offer trip.FlightOffer) (*readmodel.TripSessionRM, error) {
	selected, err := json.Marshal(offer)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rm, err := t.sessions.RecordSelection(ctx, tripID, workflow.StepSelectionMade, selected)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	t.logger.Info("offer selected", "trip_id", tripID, "quote_id", offer.QuoteID, "operator", offer.OperatorName)
	return rm, nil
}
