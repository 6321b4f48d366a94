package common_model

import (
	"fmt"

	"github.com/pterm/pterm"
)

// DescriptiveError is the JSON error payload returned by every handler.
type DescriptiveError struct {
	Message     string `json:"message" example:"unable to process entity"`
	Description string `json:"description,omitempty" example:"record not found"`
	Source      string `json:"source,omitempty" example:"repository"`
}

func (e *DescriptiveError) Error() string {
	if e.Description == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Description)
}

// NewApiError builds a DescriptiveError from a failing dependency call.
// Source names the package or subsystem that produced the failure.
func NewApiError(message string, err error, source string) *DescriptiveError {
	description := ""
	if err != nil {
		description = err.Error()
	}

	return &DescriptiveError{
		Message:     message,
		Description: description,
		Source:      source,
	}
}

// NewParseJsonError wraps request body parsing failures.
func NewParseJsonError(err error) *DescriptiveError {
	return NewApiError("unable to parse JSON body", err, "parser")
}

// NewParseQueryError wraps query string parsing failures.
func NewParseQueryError(err error) *DescriptiveError {
	return NewApiError("unable to parse query parameters", err, "parser")
}

// NewValidationError wraps struct validation failures.
func NewValidationError(err error) *DescriptiveError {
	return NewApiError("request validation failed", err, "validator")
}

// Send logs the error and returns the payload so handlers can reply inline.
func (e *DescriptiveError) Send() *DescriptiveError {
	pterm.DefaultLogger.Error(
		fmt.Sprintf("%s (source %s): %s", e.Message, e.Source, e.Description),
	)
	return e
}
