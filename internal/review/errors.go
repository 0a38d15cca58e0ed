package review

// ErrorKind tags the failure class of an analysis.
type ErrorKind string

const (
	ErrEmptyInput      ErrorKind = "empty_input"
	ErrTransport       ErrorKind = "transport_failure"
	ErrSchemaViolation ErrorKind = "schema_violation"
	ErrUnknown         ErrorKind = "unknown_failure"
)

// AnalysisError is the terminal failure carried by a Failed state. All
// four kinds are user-visible and none is retried automatically. Cause
// holds the underlying adapter error, when there is one, so callers can
// inspect it with errors.As.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

func emptyInputError() *AnalysisError {
	return &AnalysisError{Kind: ErrEmptyInput, Message: "code is empty or whitespace only"}
}

func transportError(cause error) *AnalysisError {
	return &AnalysisError{Kind: ErrTransport, Message: cause.Error(), Cause: cause}
}

func schemaError(msg string) *AnalysisError {
	return &AnalysisError{Kind: ErrSchemaViolation, Message: msg}
}

func unknownError(msg string) *AnalysisError {
	return &AnalysisError{Kind: ErrUnknown, Message: msg}
}
