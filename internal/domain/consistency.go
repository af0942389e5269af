package domain

type ConsistencyLabel string

const (
	ConsistencyExcellent      ConsistencyLabel = "excellent"
	ConsistencyGood           ConsistencyLabel = "good"
	ConsistencyInconsistent   ConsistencyLabel = "inconsistent"
	ConsistencyNeedsAttention ConsistencyLabel = "needs_attention"
)

// ComputeConsistencyLabel buckets a normalized consistency score.
func ComputeConsistencyLabel(score float64) ConsistencyLabel {
	switch {
	case score >= 0.8:
		return ConsistencyExcellent
	case score >= 0.6:
		return ConsistencyGood
	case score >= 0.4:
		return ConsistencyInconsistent
	default:
		return ConsistencyNeedsAttention
	}
}

// SeverityForConsistency maps how far a user has drifted to the severity
// used when curating the primary decision.
func SeverityForConsistency(label ConsistencyLabel) Severity {
	switch label {
	case ConsistencyNeedsAttention:
		return SeverityHigh
	case ConsistencyInconsistent:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
