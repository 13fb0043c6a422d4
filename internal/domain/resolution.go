package domain

// Outcome classifies how a key resolved.
type Outcome int

const (
	// OutcomeActive means the requested locale's table produced the text.
	OutcomeActive Outcome = iota
	// OutcomeFallback means the requested table missed and the fallback
	// locale's table produced the text.
	OutcomeFallback
	// OutcomeMiss means both tables missed and the literal key was returned.
	OutcomeMiss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeActive:
		return "active"
	case OutcomeFallback:
		return "fallback"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Resolution is the full result of a key lookup: the text after placeholder
// substitution, the locale whose table produced it (empty on a miss) and the
// outcome classification.
type Resolution struct {
	Key     string
	Locale  string
	Outcome Outcome
	Text    string
}
