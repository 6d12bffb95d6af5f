package readmodel

import (
	"encoding/json"
	"time"

	"tripflow/internal/domain/workflow"
)

// TripSessionRM is the persisted session projected for consumers. Only
// the canonical step is stored; Status and SessionStatus are the
// compatibility view derived from it.
type TripSessionRM struct {
	TripID           string          `json:"trip_id"`
	Step             workflow.Step   `json:"-"`
	CurrentStep      string          `json:"current_step"`
	Status           string          `json:"status"`
	SessionStatus    string          `json:"session_status"`
	DepartureAirport string          `json:"departure_airport"`
	ArrivalAirport   string          `json:"arrival_airport"`
	DepartureDate    *time.Time      `json:"departure_date,omitempty"`
	PassengerCount   int32           `json:"passenger_count"`
	QuotesReceived   int32           `json:"quotes_received"`
	QuotesExpected   int32           `json:"quotes_expected"`
	DeepLink         *string         `json:"deep_link,omitempty"`
	WorkflowState    json.RawMessage `json:"workflow_state,omitempty"`
	SelectedOffer    json.RawMessage `json:"selected_offer,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ApplyCompat fills the derived legacy status fields from the step.
func (rm *TripSessionRM) ApplyCompat() {
	rm.CurrentStep = rm.Step.String()
	rm.Status = workflow.LegacyStatus(rm.Step)
	rm.SessionStatus = workflow.LegacySessionStatus(rm.Step)
}
