package workflow

import "tripflow/internal/pkg/errs"

// Step is the trip's position in the fixed booking workflow sequence.
// Steps only move forward (monotonic join); the single exception is an
// explicit administrative reset.
type Step int32

const (
	StepCreated Step = iota
	StepSearching
	StepTripCreated
	StepAwaitingSelection
	StepQuotesUpdating
	StepSelectionMade
	StepContractGenerated
	StepProposalSent
	StepCompleted
	// StepFailed is absorbing: ordered after every other step so the
	// monotonic join never moves a failed trip back into the flow.
	StepFailed
)

var stepNames = map[Step]string{
	StepCreated:           "created",
	StepSearching:         "searching",
	StepTripCreated:       "trip_created",
	StepAwaitingSelection: "awaiting_selection",
	StepQuotesUpdating:    "quotes_updating",
	StepSelectionMade:     "selection_made",
	StepContractGenerated: "contract_generated",
	StepProposalSent:      "proposal_sent",
	StepCompleted:         "completed",
	StepFailed:            "failed",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Step) IsTerminal() bool {
	return s == StepCompleted || s == StepFailed
}

func ParseStep(name string) (Step, error) {
	for step, n := range stepNames {
		if n == name {
			return step, nil
		}
	}
	return StepCreated, errs.Mark(errs.Newf("unknown workflow step %q", name), errs.ErrInvalidStep)
}

// Join combines two step observations by taking the one further along
// the sequence. Order-independent, so concurrent pollers converge.
func Join(a, b Step) Step {
	if b > a {
		return b
	}
	return a
}
