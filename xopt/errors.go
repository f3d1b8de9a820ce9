package xopt

import "fmt"

// ErrorType represents error categories for parse failures.
// The category is stable API; the message text is diagnostic only.
type ErrorType string

const (
	ErrorTypeUnknownOption    ErrorType = "unknown_option"
	ErrorTypeCombined         ErrorType = "combined_short_options"
	ErrorTypeCombinedOrdering ErrorType = "combined_option_ordering"
	ErrorTypeMissingValue     ErrorType = "missing_value"
	ErrorTypeOptionsAfterArgs ErrorType = "options_after_args"
	ErrorTypeHandler          ErrorType = "handler_error"
	ErrorTypeInternal         ErrorType = "internal_error"
)

// ParseError is the error value returned by Parse and NewContext. It is
// owned by the caller that receives it; no state is shared between calls.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string // dashed spelling of the offending option, when known
	Suggestion string // closest known long name, when one was found
	Cause      error  // underlying handler error for ErrorTypeHandler
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (did you mean '--" + e.Suggestion + "'?)"
	}
	return e.Message
}

// Unwrap exposes the handler's own error to errors.Is/errors.As
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError with the given type and formatted message
func NewParseError(errType ErrorType, format string, args ...any) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}
