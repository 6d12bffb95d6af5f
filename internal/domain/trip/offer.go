package trip

import (
	"strconv"
	"time"
)

// OfferStatus mirrors the RFQ display status the upstream reports.
type OfferStatus string

const (
	StatusUnanswered OfferStatus = "unanswered"
	StatusQuoted     OfferStatus = "quoted"
	StatusAccepted   OfferStatus = "accepted"
	StatusDeclined   OfferStatus = "declined"
	StatusExpired    OfferStatus = "expired"
)

// IsPriced reports whether the status is a terminal priced one, i.e. the
// offer counts toward quotes_received.
func (s OfferStatus) IsPriced() bool {
	return s == StatusQuoted || s == StatusAccepted
}

// FlightOffer is the normalized projection of one resolved lift+quote
// pair. Its shape is the hand-off contract for the contract/proposal
// collaborators and must stay stable.
type FlightOffer struct {
	QuoteID          string        `json:"quoteId,omitempty"`
	RFQID            string        `json:"rfqId"`
	LiftIndex        int           `json:"liftIndex"`
	OperatorName     string        `json:"operatorName"`
	AircraftType     string        `json:"aircraftType"`
	AircraftCategory string        `json:"aircraftCategory"`
	TailNumber       string        `json:"tailNumber,omitempty"`
	Price            float64       `json:"price"`
	Currency         string        `json:"currency"`
	ResponseLatency  time.Duration `json:"responseLatency"`
	Status           OfferStatus   `json:"status"`
}

// DedupKey identifies the underlying quote: the quote identifier when
// present, otherwise the (RFQ id, lift index) pair.
func (o FlightOffer) DedupKey() string {
	if o.QuoteID != "" {
		return Bare(o.QuoteID)
	}
	return o.RFQID + "#" + strconv.Itoa(o.LiftIndex)
}
