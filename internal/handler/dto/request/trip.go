package request

import (
	"strings"

	"tripflow/internal/pkg/errs"
	"tripflow/internal/usecase"
)

// SelectOfferRequest picks one resolved offer. quote_id addresses lifts
// that carry a quote reference; rfq_id + lift_index addresses
// inline-priced lifts, which never get a quote id.
type SelectOfferRequest struct {
	QuoteID   string `json:"quote_id"`
	RFQID     string `json:"rfq_id"`
	LiftIndex *int   `json:"lift_index"`
}

func (r SelectOfferRequest) Selector() (usecase.OfferSelector, error) {
	quoteID := strings.TrimSpace(r.QuoteID)
	rfqID := strings.TrimSpace(r.RFQID)

	switch {
	case quoteID != "":
		return usecase.OfferSelector{QuoteID: quoteID}, nil
	case rfqID != "" && r.LiftIndex != nil && *r.LiftIndex >= 0:
		return usecase.OfferSelector{RFQID: rfqID, LiftIndex: *r.LiftIndex}, nil
	default:
		return usecase.OfferSelector{}, errs.New("selection requires quote_id, or rfq_id with lift_index")
	}
}

type ResetWorkflowRequest struct {
	Step string `json:"step" binding:"required"`
}
