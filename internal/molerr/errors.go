// Package molerr defines the typed errors molview returns, matchable with
// errors.Is against the Err sentinels or by type with IsType.
package molerr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of a molview error
type ErrorType string

const (
	// ErrTypeInvalidColor indicates a color string that is neither hex nor a known name
	ErrTypeInvalidColor ErrorType = "invalid_color"

	// ErrTypeUnknownPalette indicates a rainbow palette name outside the palette table
	ErrTypeUnknownPalette ErrorType = "unknown_palette"

	// ErrTypeUnknownColorMode indicates a color mode name with no matching variant
	ErrTypeUnknownColorMode ErrorType = "unknown_color_mode"

	// ErrTypeUnknownFormat indicates structure data whose format could not be determined
	ErrTypeUnknownFormat ErrorType = "unknown_format"

	// ErrTypeInvalidFormat indicates a download format the fetch endpoints do not serve
	ErrTypeInvalidFormat ErrorType = "invalid_format"

	// ErrTypeMissingViewerCoordinate indicates a grid call without a (row, col)
	ErrTypeMissingViewerCoordinate ErrorType = "missing_viewer_coordinate"

	// ErrTypeOutOfRangeCoordinate indicates a (row, col) outside the grid bounds
	ErrTypeOutOfRangeCoordinate ErrorType = "out_of_range_coordinate"

	// ErrTypeInvalidGrid indicates a grid with no cells
	ErrTypeInvalidGrid ErrorType = "invalid_grid"

	// ErrTypeInvalidLayout indicates a layout mode other than single or grid
	ErrTypeInvalidLayout ErrorType = "invalid_layout"

	// ErrTypeInvalidArgument indicates any other rejected input value
	ErrTypeInvalidArgument ErrorType = "invalid_argument"

	// ErrTypeNotFound indicates the remote database has no such entry
	ErrTypeNotFound ErrorType = "not_found"

	// ErrTypeNetwork indicates transport failure or an unexpected HTTP status
	ErrTypeNetwork ErrorType = "network"
)

// Sentinels for errors.Is; matching is by type only.
var (
	ErrInvalidColor            = &Error{Type: ErrTypeInvalidColor}
	ErrUnknownPalette          = &Error{Type: ErrTypeUnknownPalette}
	ErrUnknownColorMode        = &Error{Type: ErrTypeUnknownColorMode}
	ErrUnknownFormat           = &Error{Type: ErrTypeUnknownFormat}
	ErrInvalidFormat           = &Error{Type: ErrTypeInvalidFormat}
	ErrMissingViewerCoordinate = &Error{Type: ErrTypeMissingViewerCoordinate}
	ErrOutOfRangeCoordinate    = &Error{Type: ErrTypeOutOfRangeCoordinate}
	ErrInvalidGrid             = &Error{Type: ErrTypeInvalidGrid}
	ErrInvalidLayout           = &Error{Type: ErrTypeInvalidLayout}
	ErrInvalidArgument         = &Error{Type: ErrTypeInvalidArgument}
	ErrNotFound                = &Error{Type: ErrTypeNotFound}
	ErrNetwork                 = &Error{Type: ErrTypeNetwork}
)

// Error is the single error type surfaced by molview operations
type Error struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message provides human-readable error description
	Message string `json:"message"`

	// Subject names the offending value (color string, PDB ID, URL, ...)
	Subject string `json:"subject,omitempty"`

	// StatusCode for HTTP-related errors
	StatusCode int `json:"status_code,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	parts := []string{fmt.Sprintf("type=%s", e.Type)}

	if e.Subject != "" {
		parts = append(parts, fmt.Sprintf("subject=%s", e.Subject))
	}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same type
func (e *Error) Is(target error) bool {
	if te, ok := target.(*Error); ok {
		return e.Type == te.Type
	}
	return false
}

// New creates an error of the given type
func New(errType ErrorType, subject, message string) *Error {
	return &Error{
		Type:    errType,
		Subject: subject,
		Message: message,
	}
}

// Newf creates an error with a formatted message
func Newf(errType ErrorType, subject, format string, args ...interface{}) *Error {
	return New(errType, subject, fmt.Sprintf(format, args...))
}

// Wrap creates an error of the given type with an underlying cause
func Wrap(errType ErrorType, subject, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Subject: subject,
		Message: message,
		Cause:   cause,
	}
}

// HTTPStatus creates a network or not-found error for an HTTP response
func HTTPStatus(errType ErrorType, subject string, status int, message string) *Error {
	return &Error{
		Type:       errType,
		Subject:    subject,
		StatusCode: status,
		Message:    message,
	}
}

// IsType reports whether err (or anything it wraps) is an *Error of errType
func IsType(err error, errType ErrorType) bool {
	var me *Error
	if errors.As(err, &me) {
		return me.Type == errType
	}
	return false
}

// TypeOf returns the error type of err, or "" when err is not an *Error
func TypeOf(err error) ErrorType {
	var me *Error
	if errors.As(err, &me) {
		return me.Type
	}
	return ""
}
