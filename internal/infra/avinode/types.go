package avinode

import (
	"encoding/json"
	"strconv"
	"time"

	"tripflow/internal/domain/trip"
)

// Wire types for the marketplace API. Every response body wraps the
// resource in a `data` envelope.

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Link appears either as a plain string or as an object with an href.
type Link struct {
	Href string
}

func (l *Link) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		l.Href = s
		return nil
	}
	var obj struct {
		Href string `json:"href"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	l.Href = obj.Href
	return nil
}

type Airport struct {
	ICAO string `json:"icao"`
}

type SegmentTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Segment struct {
	StartAirport Airport     `json:"startAirport"`
	EndAirport   Airport     `json:"endAirport"`
	DateTime     SegmentTime `json:"dateTime"`
	PaxCount     string      `json:"paxCount"`
}

type TripPayload struct {
	ID        string          `json:"id"`
	DisplayID string          `json:"tripId"`
	Segments  []Segment       `json:"segments"`
	RFQs      []RFQPayload    `json:"rfqs"`
	Actions   map[string]Link `json:"actions"`
	CreatedAt *time.Time      `json:"createdDateTime,omitempty"`
}

// FirstSegment returns the leading segment, the source of the route
// snapshot. Trips always carry at least one segment upstream, but the
// zero value keeps partial payloads safe.
func (t *TripPayload) FirstSegment() Segment {
	if len(t.Segments) == 0 {
		return Segment{}
	}
	return t.Segments[0]
}

func (s Segment) PassengerCount() int {
	n, err := strconv.Atoi(s.PaxCount)
	if err != nil {
		return 0
	}
	return n
}

func (s Segment) DepartureDate() time.Time {
	d, err := time.Parse("2006-01-02", s.DateTime.Date)
	if err != nil {
		return time.Time{}
	}
	return d
}

type Seller struct {
	Name string `json:"name"`
}

type RFQPayload struct {
	ID            string        `json:"id"`
	SellerCompany Seller        `json:"sellerCompany"`
	DisplayStatus string        `json:"displayStatus"`
	Lifts         []LiftPayload `json:"lifts"`
	RespondedAt   *time.Time    `json:"respondedDateTime,omitempty"`
}

// IsLinkOnly reports whether the RFQ appeared on the trip as a bare
// reference that needs its own fetch before lifts are visible.
func (r RFQPayload) IsLinkOnly() bool {
	return len(r.Lifts) == 0 && r.SellerCompany.Name == "" && r.DisplayStatus == ""
}

type Aircraft struct {
	Type       string `json:"type"`
	Category   string `json:"category"`
	TailNumber string `json:"tailNumber"`
}

type PricePayload struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type QuoteRef struct {
	ID   string `json:"id"`
	Href string `json:"href"`
}

// LiftPayload carries pricing under one of several historical field
// names, or only a quote reference when the operator priced it
// out-of-band.
type LiftPayload struct {
	ID          string        `json:"id"`
	Aircraft    Aircraft      `json:"aircraft"`
	SellerPrice *PricePayload `json:"sellerPrice,omitempty"`
	TotalPrice  *PricePayload `json:"totalPrice,omitempty"`
	QuotedPrice *PricePayload `json:"quotedPrice,omitempty"`
	Price       *PricePayload `json:"price,omitempty"`
	Quote       *QuoteRef     `json:"quote,omitempty"`
}

// PriceFields feeds the domain normalization table with whichever legacy
// price fields this lift populated.
func (l LiftPayload) PriceFields() map[string]trip.Money {
	fields := make(map[string]trip.Money, 4)
	put := func(name string, p *PricePayload) {
		if p != nil {
			fields[name] = trip.Money{Amount: p.Amount, Currency: p.Currency}
		}
	}
	put("sellerPrice", l.SellerPrice)
	put("totalPrice", l.TotalPrice)
	put("quotedPrice", l.QuotedPrice)
	put("price", l.Price)
	return fields
}

type QuoteBreakdown struct {
	BasePrice float64 `json:"basePrice"`
	Fees      float64 `json:"fees"`
	Taxes     float64 `json:"taxes"`
}

type QuotePayload struct {
	ID          string          `json:"id"`
	SellerPrice PricePayload    `json:"sellerPrice"`
	Breakdown   *QuoteBreakdown `json:"quoteBreakdown,omitempty"`
	Tail        *Aircraft       `json:"aircraftTail,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedDateTime,omitempty"`
}
