package trip

import "time"

// Trip is the engine's view of a marketplace trip: the immutable route
// snapshot plus the RFQ list, which grows as operators opt in.
type Trip struct {
	ID               string
	DisplayID        string
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    time.Time
	PassengerCount   int
	RFQs             []RFQ
	CreatedAt        time.Time
}

// RFQ is one operator's request-for-quote slot within a trip.
type RFQ struct {
	ID          string
	SellerName  string
	Status      OfferStatus
	Lifts       []Lift
	RespondedAt *time.Time
}

// Lift is one candidate aircraft offered under an RFQ. Pricing is either
// inline (already normalized) or reachable through QuoteID.
type Lift struct {
	ID               string
	AircraftType     string
	AircraftCategory string
	TailNumber       string
	InlinePrice      *Money
	QuoteID          string
}

// HasInlinePrice reports whether the lift can produce an offer without a
// secondary quote fetch.
func (l Lift) HasInlinePrice() bool {
	return l.InlinePrice != nil && !l.InlinePrice.IsZero()
}
