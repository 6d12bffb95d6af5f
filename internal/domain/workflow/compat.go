package workflow

// The earlier schema revision persisted two overlapping status columns
// (`status` and `session_status`). Only the canonical step is stored now;
// both legacy fields are derived here so consumers that still expect
// them keep working.

// LegacyStatus derives the coarse lifecycle phase the old `status`
// column carried.
func LegacyStatus(s Step) string {
	switch {
	case s == StepFailed:
		return "failed"
	case s == StepCompleted:
		return "completed"
	case s >= StepContractGenerated:
		return "finalizing"
	case s >= StepTripCreated:
		return "in_progress"
	default:
		return "pending"
	}
}

// LegacySessionStatus derives the old `session_status` column, which
// stored the step name itself.
func LegacySessionStatus(s Step) string {
	return s.String()
}
