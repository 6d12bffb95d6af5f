//go:build unit

package workflow_test

import (
	"testing"

	"tripflow/internal/domain/workflow"
	"tripflow/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestMinimumAdmissibleStep(t *testing.T) {
	tests := []struct {
		name    string
		signals workflow.Signals
		want    workflow.Step
	}{
		{
			name:    "nothing observed",
			signals: workflow.Signals{},
			want:    workflow.StepCreated,
		},
		{
			name:    "trip exists only",
			signals: workflow.Signals{TripExists: true},
			want:    workflow.StepTripCreated,
		},
		{
			name:    "rfqs present",
			signals: workflow.Signals{TripExists: true, RFQCount: 3},
			want:    workflow.StepAwaitingSelection,
		},
		{
			name:    "quotes received outrank rfq presence",
			signals: workflow.Signals{TripExists: true, RFQCount: 3, QuotesReceived: 2},
			want:    workflow.StepQuotesUpdating,
		},
		{
			name:    "deep link alone justifies awaiting selection",
			signals: workflow.Signals{TripExists: true, DeepLink: ptr.To("https://sandbox.avinode.com/marketplace/mvc/trips/view/atrip-1")},
			want:    workflow.StepAwaitingSelection,
		},
		{
			name:    "selection outranks quote activity",
			signals: workflow.Signals{TripExists: true, RFQCount: 3, QuotesReceived: 2, SelectionMade: true},
			want:    workflow.StepSelectionMade,
		},
		{
			name:    "proposal sent is the furthest signal",
			signals: workflow.Signals{TripExists: true, SelectionMade: true, ContractGenerated: true, ProposalSent: true},
			want:    workflow.StepProposalSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workflow.MinimumAdmissibleStep(tt.signals))
		})
	}
}

func TestContradictions(t *testing.T) {
	link := ptr.To("https://sandbox.avinode.com/marketplace/mvc/trips/view/atrip-1")

	t.Run("consistent signals produce none", func(t *testing.T) {
		sig := workflow.Signals{TripExists: true, RFQCount: 3, QuotesReceived: 2, DeepLink: link}
		assert.Empty(t, sig.Contradictions())
	})

	t.Run("deep link without rfqs", func(t *testing.T) {
		sig := workflow.Signals{TripExists: true, DeepLink: link}
		found := sig.Contradictions()
		assert.Len(t, found, 1)
		assert.Contains(t, found[0], "deep link")
	})

	t.Run("quotes without rfqs flags twice", func(t *testing.T) {
		// Both the no-RFQ rule and the exceeds-count rule trip here.
		sig := workflow.Signals{TripExists: true, QuotesReceived: 2}
		assert.Len(t, sig.Contradictions(), 2)
	})

	t.Run("selection on a missing trip", func(t *testing.T) {
		sig := workflow.Signals{SelectionMade: true}
		found := sig.Contradictions()
		assert.Len(t, found, 1)
		assert.Contains(t, found[0], "does not exist")
	})
}

func TestLegacyStatus(t *testing.T) {
	tests := []struct {
		step workflow.Step
		want string
	}{
		{workflow.StepCreated, "pending"},
		{workflow.StepSearching, "pending"},
		{workflow.StepTripCreated, "in_progress"},
		{workflow.StepAwaitingSelection, "in_progress"},
		{workflow.StepQuotesUpdating, "in_progress"},
		{workflow.StepSelectionMade, "in_progress"},
		{workflow.StepContractGenerated, "finalizing"},
		{workflow.StepProposalSent, "finalizing"},
		{workflow.StepCompleted, "completed"},
		{workflow.StepFailed, "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, workflow.LegacyStatus(tt.step))
		})
	}
}

func TestLegacySessionStatusMirrorsStepName(t *testing.T) {
	for _, s := range allSteps {
		assert.Equal(t, s.String(), workflow.LegacySessionStatus(s))
	}
}
