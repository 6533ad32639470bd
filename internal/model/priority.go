package model

// Priority classifies how urgently a recommendation should be acted on.
// Thresholds are applied to the criterion's raw score.
type Priority int

const (
	// PriorityCritical marks scores below 20.
	PriorityCritical Priority = iota

	// PriorityHigh marks scores from 20 up to but not including 40.
	PriorityHigh

	// PriorityMedium marks scores from 40 up to but not including 60.
	PriorityMedium

	// PriorityLow marks scores from 60 up to but not including 80.
	PriorityLow

	// PriorityDoingGreat marks scores of 80 and above.
	PriorityDoingGreat
)

// PriorityForScore maps a criterion score to its urgency band.
func PriorityForScore(score float64) Priority {
	switch {
	case score < 20:
		return PriorityCritical
	case score < 40:
		return PriorityHigh
	case score < 60:
		return PriorityMedium
	case score < 80:
		return PriorityLow
	default:
		return PriorityDoingGreat
	}
}

// String returns the priority's display label.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	case PriorityDoingGreat:
		return "DOING GREAT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler so priorities serialize
// as their labels in JSON reports.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Recommendation is one prioritized, actionable improvement suggestion.
type Recommendation struct {
	// Priority is the urgency band derived from the criterion score.
	Priority Priority `json:"priority"`

	// Criterion names the quality dimension the advice targets.
	Criterion Criterion `json:"criterion"`

	// Text is the human-readable advice, specific to the breakdown values
	// that produced the score.
	Text string `json:"text"`
}
