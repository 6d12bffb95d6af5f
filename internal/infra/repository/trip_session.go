package repository

import (
	"context"
	"time"

	"tripflow/internal/domain/workflow"
	"tripflow/internal/infra"
	"tripflow/internal/infra/db"
	"tripflow/internal/pkg/patch"
	"tripflow/internal/pkg/pgconv"
	"tripflow/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TripSessionRepository struct {
	db db.DBTX
}

func NewTripSessionRepository(pool *pgxpool.Pool) *TripSessionRepository {
	return &TripSessionRepository{db: pool}
}

type UpsertTripSessionParams struct {
	TripID           string
	Step             workflow.Step
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    *time.Time
	PassengerCount   *int32
	QuotesReceived   int32
	QuotesExpected   int32
	DeepLink         *string
	WorkflowState    []byte
}

const sessionColumns = `
	trip_id, current_step, departure_airport, arrival_airport, departure_date,
	passenger_count, quotes_received, quotes_expected, deep_link,
	workflow_state, selected_offer, created_at, updated_at`

// The conflict branch applies the monotonic join: GREATEST keeps
// current_step from regressing under concurrent pollers, and COALESCE
// keeps unrelated fields untouched when the observation lacks them.
const upsertTripSessionSQL = `
INSERT INTO trip_sessions (
	trip_id, current_step, departure_airport, arrival_airport, departure_date,
	passenger_count, quotes_received, quotes_expected, deep_link, workflow_state
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (trip_id) DO UPDATE SET
	current_step      = GREATEST(trip_sessions.current_step, EXCLUDED.current_step),
	departure_airport = COALESCE(NULLIF(EXCLUDED.departure_airport, ''), trip_sessions.departure_airport),
	arrival_airport   = COALESCE(NULLIF(EXCLUDED.arrival_airport, ''), trip_sessions.arrival_airport),
	departure_date    = COALESCE(EXCLUDED.departure_date, trip_sessions.departure_date),
	passenger_count   = COALESCE(NULLIF(EXCLUDED.passenger_count, 0), trip_sessions.passenger_count),
	quotes_received   = EXCLUDED.quotes_received,
	quotes_expected   = EXCLUDED.quotes_expected,
	deep_link         = COALESCE(EXCLUDED.deep_link, trip_sessions.deep_link),
	workflow_state    = COALESCE(EXCLUDED.workflow_state, trip_sessions.workflow_state),
	updated_at        = now()
RETURNING` + sessionColumns

func (r *TripSessionRepository) Upsert(ctx context.Context, params UpsertTripSessionParams) (*readmodel.TripSessionRM, error) {
	passengerCount := patch.Coalesce(params.PassengerCount, 0)

	var departureDate pgtype.Date
	if params.DepartureDate != nil {
		departureDate = pgconv.DateToPgtype(*params.DepartureDate)
	}

	row := r.db.QueryRow(ctx, upsertTripSessionSQL,
		params.TripID,
		int32(params.Step),
		params.DepartureAirport,
		params.ArrivalAirport,
		departureDate,
		passengerCount,
		params.QuotesReceived,
		params.QuotesExpected,
		pgconv.StringPtrToPgtype(params.DeepLink),
		params.WorkflowState,
	)

	rm, err := scanTripSession(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert trip session", err)
	}
	return rm, nil
}

const findTripSessionSQL = `SELECT` + sessionColumns + ` FROM trip_sessions WHERE trip_id = $1`

func (r *TripSessionRepository) FindByTripID(ctx context.Context, tripID string) (*readmodel.TripSessionRM, error) {
	rm, err := scanTripSession(r.db.QueryRow(ctx, findTripSessionSQL, tripID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trip session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trip session", err)
	}
	return rm, nil
}

// ResetStep is the only write allowed to move current_step backward. It
// also clears the observation-derived fields so the next poll rebuilds
// them from scratch.
const resetTripSessionSQL = `
UPDATE trip_sessions SET
	current_step    = $2,
	quotes_received = 0,
	deep_link       = NULL,
	selected_offer  = NULL,
	workflow_state  = NULL,
	updated_at      = now()
WHERE trip_id = $1
RETURNING` + sessionColumns

func (r *TripSessionRepository) ResetStep(ctx context.Context, tripID string, step workflow.Step) (*readmodel.TripSessionRM, error) {
	rm, err := scanTripSession(r.db.QueryRow(ctx, resetTripSessionSQL, tripID, int32(step)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trip session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to reset trip session", err)
	}
	return rm, nil
}

const recordSelectionSQL = `
UPDATE trip_sessions SET
	current_step   = GREATEST(trip_sessions.current_step, $2),
	selected_offer = $3,
	updated_at     = now()
WHERE trip_id = $1
RETURNING` + sessionColumns

func (r *TripSessionRepository) RecordSelection(ctx context.Context, tripID string, step workflow.Step, selectedOffer []byte) (*readmodel.TripSessionRM, error) {
	rm, err := scanTripSession(r.db.QueryRow(ctx, recordSelectionSQL, tripID, int32(step), selectedOffer))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trip session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to record selection", err)
	}
	return rm, nil
}

func scanTripSession(row pgx.Row) (*readmodel.TripSessionRM, error) {
	var (
		rm            readmodel.TripSessionRM
		step          int32
		departureDate pgtype.Date
		deepLink      pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(
		&rm.TripID,
		&step,
		&rm.DepartureAirport,
		&rm.ArrivalAirport,
		&departureDate,
		&rm.PassengerCount,
		&rm.QuotesReceived,
		&rm.QuotesExpected,
		&deepLink,
		&rm.WorkflowState,
		&rm.SelectedOffer,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.Step = workflow.Step(step)
	if departureDate.Valid {
		d := pgconv.DateFromPgtype(departureDate)
		rm.DepartureDate = &d
	}
	rm.DeepLink = pgconv.StringPtrFromPgtype(deepLink)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	rm.ApplyCompat()

	return &rm, nil
}
