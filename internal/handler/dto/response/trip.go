package response

import (
	"encoding/json"
	"time"

	"tripflow/internal/domain/trip"
	"tripflow/internal/usecase"
	"tripflow/internal/usecase/readmodel"
)

type FlightOfferResponse struct {
	QuoteID          string  `json:"quoteId,omitempty"`
	RFQID            string  `json:"rfqId"`
	OperatorName     string  `json:"operatorName"`
	AircraftType     string  `json:"aircraftType"`
	AircraftCategory string  `json:"aircraftCategory"`
	TailNumber       string  `json:"tailNumber,omitempty"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	ResponseTimeMin  int64   `json:"responseTimeMinutes"`
	Status           string  `json:"status"`
}

type ResolveTripResponse struct {
	Offers      []FlightOfferResponse `json:"offers"`
	TotalQuotes int                   `json:"totalQuotes"`
	Warnings    []string              `json:"warnings,omitempty"`
	Session     *TripSessionResponse  `json:"session"`
}

type TripSessionResponse struct {
	TripID           string          `json:"tripId"`
	CurrentStep      string          `json:"currentStep"`
	Status           string          `json:"status"`
	SessionStatus    string          `json:"sessionStatus"`
	DepartureAirport string          `json:"departureAirport,omitempty"`
	ArrivalAirport   string          `json:"arrivalAirport,omitempty"`
	DepartureDate    *time.Time      `json:"departureDate,omitempty"`
	PassengerCount   int32           `json:"passengerCount"`
	QuotesReceived   int32           `json:"quotesReceived"`
	QuotesExpected   int32           `json:"quotesExpected"`
	DeepLink         *string         `json:"deepLink,omitempty"`
	SelectedOffer    json.RawMessage `json:"selectedOffer,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func FromFlightOffer(o trip.FlightOffer) FlightOfferResponse {
	return FlightOfferResponse{
		QuoteID:          o.QuoteID,
		RFQID:            o.RFQID,
		OperatorName:     o.OperatorName,
		AircraftType:     o.AircraftType,
		AircraftCategory: o.AircraftCategory,
		TailNumber:       o.TailNumber,
		Price:            o.Price,
		Currency:         o.Currency,
		ResponseTimeMin:  int64(o.ResponseLatency.Minutes()),
		Status:           string(o.Status),
	}
}

func FromTripSession(rm *readmodel.TripSessionRM) *TripSessionResponse {
	if rm == nil {
		return nil
	}
	return &TripSessionResponse{
		TripID:           rm.TripID,
		CurrentStep:      rm.CurrentStep,
		Status:           rm.Status,
		SessionStatus:    rm.SessionStatus,
		DepartureAirport: rm.DepartureAirport,
		ArrivalAirport:   rm.ArrivalAirport,
		DepartureDate:    rm.DepartureDate,
		PassengerCount:   rm.PassengerCount,
		QuotesReceived:   rm.QuotesReceived,
		QuotesExpected:   rm.QuotesExpected,
		DeepLink:         rm.DeepLink,
		SelectedOffer:    rm.SelectedOffer,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromResolveResult(result *usecase.ResolveTripResult) *ResolveTripResponse {
	offers := make([]FlightOfferResponse, len(result.Offers))
	for i, o := range result.Offers {
		offers[i] = FromFlightOffer(o)
	}
	return &ResolveTripResponse{
		Offers:      offers,
		TotalQuotes: result.TotalQuotes,
		Warnings:    result.Warnings,
		Session:     FromTripSession(result.Session),
	}
}
