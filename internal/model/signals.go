package model

// DataBag is an externally supplied mapping of precomputed metrics.
// Values are primitives (bool, int, float64, string) or nested DataBags.
//
// Design decision: Collectors return either a populated bag or an empty
// one, never nil and never an error. Absence-as-empty-bag is the uniform
// failure representation, so scorers read bags without nil checks and a
// failed collaborator simply contributes nothing.
type DataBag map[string]any

// Bool returns the named value as a bool, or false when absent or of a
// different type.
func (b DataBag) Bool(key string) bool {
	v, ok := b[key].(bool)
	return ok && v
}

// Int returns the named value as an int. Float values are truncated;
// anything else yields zero.
func (b DataBag) Int(key string) int {
	switch v := b[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Float returns the named value as a float64, or zero when absent.
func (b DataBag) Float(key string) float64 {
	switch v := b[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// String returns the named value as a string, or "" when absent.
func (b DataBag) String(key string) string {
	v, _ := b[key].(string)
	return v
}

// Bag returns the named nested bag, or an empty bag when absent.
func (b DataBag) Bag(key string) DataBag {
	switch v := b[key].(type) {
	case DataBag:
		return v
	case map[string]any:
		return DataBag(v)
	default:
		return DataBag{}
	}
}

// IsEmpty reports whether the bag carries no values.
func (b DataBag) IsEmpty() bool {
	return len(b) == 0
}

// Signal source names. These are the fixed keys of the Signals mapping
// and of the free_data_sources section of the report.
const (
	SignalPerformance = "performance"
	SignalMobile      = "mobile"
	SignalSEO         = "seo"
	SignalSecurity    = "security"
	SignalSocial      = "social"
)

// Signals groups the named data bags produced by the collection phase.
// Every source is always present; a failed collector leaves an empty bag.
type Signals struct {
	// Performance holds load-time and payload metrics.
	Performance DataBag `json:"performance"`

	// Mobile holds viewport/touch friendliness flags.
	Mobile DataBag `json:"mobile"`

	// SEO holds indexability and meta signals.
	SEO DataBag `json:"seo"`

	// Security holds transport security flags.
	Security DataBag `json:"security"`

	// Social holds platform presence, sharing buttons, and social proof.
	Social DataBag `json:"social"`
}

// NewSignals returns a Signals value with every bag initialized empty.
func NewSignals() *Signals {
	return &Signals{
		Performance: DataBag{},
		Mobile:      DataBag{},
		SEO:         DataBag{},
		Security:    DataBag{},
		Social:      DataBag{},
	}
}

// Set stores a bag under its source name. Unknown names are ignored;
// a nil bag is normalized to an empty one.
func (s *Signals) Set(source string, bag DataBag) {
	if bag == nil {
		bag = DataBag{}
	}
	switch source {
	case SignalPerformance:
		s.Performance = bag
	case SignalMobile:
		s.Mobile = bag
	case SignalSEO:
		s.SEO = bag
	case SignalSecurity:
		s.Security = bag
	case SignalSocial:
		s.Social = bag
	}
}
