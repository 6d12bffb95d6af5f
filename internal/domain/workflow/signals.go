package workflow

import "fmt"

// Signals are the objective facts observed about a trip during one poll.
// They are authoritative over any cached step value.
type Signals struct {
	TripExists        bool    `json:"tripExists"`
	RFQCount          int     `json:"rfqCount"`
	QuotesReceived    int     `json:"quotesReceived"`
	DeepLink          *string `json:"deepLink,omitempty"`
	SelectionMade     bool    `json:"selectionMade"`
	ContractGenerated bool    `json:"contractGenerated"`
	ProposalSent      bool    `json:"proposalSent"`
}

// MinimumAdmissibleStep recomputes the lowest step the observed signals
// justify. The tracker joins this with the stored step; it never trusts
// a caller-supplied step number on its own.
func MinimumAdmissibleStep(sig Signals) Step {
	step := StepCreated
	if sig.TripExists {
		step = Join(step, StepTripCreated)
	}
	if sig.RFQCount > 0 {
		step = Join(step, StepAwaitingSelection)
	}
	if sig.QuotesReceived > 0 {
		step = Join(step, StepQuotesUpdating)
	}
	if sig.DeepLink != nil {
		step = Join(step, StepAwaitingSelection)
	}
	if sig.SelectionMade {
		step = Join(step, StepSelectionMade)
	}
	if sig.ContractGenerated {
		step = Join(step, StepContractGenerated)
	}
	if sig.ProposalSent {
		step = Join(step, StepProposalSent)
	}
	return step
}

// Contradictions lists inconsistencies between signals. A contradiction
// never fails the observation; it is logged and the objectively-derived
// step still wins.
func (sig Signals) Contradictions() []string {
	var found []string
	if sig.DeepLink != nil && sig.RFQCount == 0 {
		found = append(found, "deep link present but no RFQ recorded")
	}
	if sig.QuotesReceived > 0 && sig.RFQCount == 0 {
		found = append(found, fmt.Sprintf("%d quotes received but no RFQ recorded", sig.QuotesReceived))
	}
	if sig.QuotesReceived > sig.RFQCount {
		found = append(found, fmt.Sprintf("quotes received (%d) exceeds RFQ count (%d)", sig.QuotesReceived, sig.RFQCount))
	}
	if (sig.SelectionMade || sig.ContractGenerated || sig.ProposalSent) && !sig.TripExists {
		found = append(found, "selection recorded for a trip that does not exist upstream")
	}
	return found
}
