package review

// Issue is a single reviewer finding tied to a line of the submitted
// code. Line is 1-based; 0 means the issue applies to the whole snippet.
type Issue struct {
	Line       int    `json:"line"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// AnalysisResult is the validated outcome of one analysis. Values are
// immutable once produced; a new analysis replaces the result wholesale.
type AnalysisResult struct {
	Score         int     `json:"score"`
	Summary       string  `json:"summary"`
	Issues        []Issue `json:"issues"`
	OptimizedCode string  `json:"optimizedCode"`
}

// Phase is the lifecycle position of the current request.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseInFlight   Phase = "in_flight"
	PhaseSuccess    Phase = "success"
	PhaseFailed     Phase = "failed"
)

// State is the controller's externally visible condition. Result is
// non-nil exactly when Phase is PhaseSuccess, Err exactly when Phase is
// PhaseFailed; no other combination is produced.
type State struct {
	Phase  Phase
	Result *AnalysisResult
	Err    *AnalysisError
}

// Terminal reports whether the state ends a request (success or failure).
func (s State) Terminal() bool {
	return s.Phase == PhaseSuccess || s.Phase == PhaseFailed
}
