package discovery

import (
	"errors"
	"fmt"
	"strconv"
)

// Category errors. Every *Error returned by this package matches exactly one
// of them with errors.Is. Transport failures and context cancellation are not
// wrapped and therefore match none of them.
var (
	// ErrInvalidIssuer is returned when the issuer supplied by the caller is
	// not an absolute URL.
	ErrInvalidIssuer = errors.New("invalid issuer")

	// ErrUnexpectedStatus is returned when the metadata endpoint answers with
	// anything other than 200 OK.
	ErrUnexpectedStatus = errors.New("unexpected status from metadata endpoint")

	// ErrMalformedBody is returned when the metadata response is not a JSON
	// object.
	ErrMalformedBody = errors.New("malformed provider metadata")

	// ErrIssuerMismatch is returned when the issuer claimed by the metadata
	// document does not match the issuer used to retrieve it.
	ErrIssuerMismatch = errors.New("issuer mismatch")

	// ErrInvalidField is returned when a metadata property is missing or does
	// not have the type the standard requires.
	ErrInvalidField = errors.New("invalid provider metadata property")
)

// Error codes
const (
	ErrorCodeInvalidIssuer    = "invalid_issuer"
	ErrorCodeUnexpectedStatus = "unexpected_status"
	ErrorCodeMalformedBody    = "malformed_body"
	ErrorCodeNotAnObject      = "not_an_object"
	ErrorCodeBodyTooLarge     = "body_too_large"
	ErrorCodeIssuerMismatch   = "issuer_mismatch"
	ErrorCodeMissingField     = "missing_field"
	ErrorCodeNotString        = "not_string"
	ErrorCodeInvalidURL       = "invalid_url"
	ErrorCodeNotStringArray   = "not_string_array"
	ErrorCodeNonStringElement = "non_string_element"
)

// Error describes why provider metadata could not be retrieved or parsed.
// Only the fields relevant to Code are set.
type Error struct {
	// Code is a machine-readable error code, one of the ErrorCode constants.
	Code string

	// Message is a human-readable error message.
	Message string

	// Field is the wire name of the offending metadata property.
	Field string

	// Index is the position of the offending element for
	// ErrorCodeNonStringElement, -1 otherwise.
	Index int

	// StatusCode is the HTTP status observed for ErrorCodeUnexpectedStatus.
	StatusCode int

	// Expected and Actual hold the requested and the claimed issuer for
	// ErrorCodeIssuerMismatch.
	Expected string
	Actual   string

	// Details contains the underlying error, if any.
	Details error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("OIDC provider metadata property %q %s", e.Field, e.Message)
	}
	if e.Details != nil {
		return msg + ": " + e.Details.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Details
}

// Is reports whether target is the category sentinel for e.Code.
func (e *Error) Is(target error) bool {
	return target == e.category()
}

func (e *Error) category() error {
	switch e.Code {
	case ErrorCodeInvalidIssuer:
		return ErrInvalidIssuer
	case ErrorCodeUnexpectedStatus:
		return ErrUnexpectedStatus
	case ErrorCodeMalformedBody, ErrorCodeNotAnObject, ErrorCodeBodyTooLarge:
		return ErrMalformedBody
	case ErrorCodeIssuerMismatch:
		return ErrIssuerMismatch
	case ErrorCodeMissingField, ErrorCodeNotString, ErrorCodeInvalidURL,
		ErrorCodeNotStringArray, ErrorCodeNonStringElement:
		return ErrInvalidField
	}
	return nil
}

func newInvalidIssuerError(issuer string, details error) *Error {
	return &Error{
		Code:    ErrorCodeInvalidIssuer,
		Message: fmt.Sprintf("issuer %q is not an absolute URL", issuer),
		Index:   -1,
		Details: details,
	}
}

func newStatusError(statusCode int) *Error {
	return &Error{
		Code:       ErrorCodeUnexpectedStatus,
		Message:    "incorrect status from metadata endpoint, expected 200, got " + strconv.Itoa(statusCode),
		Index:      -1,
		StatusCode: statusCode,
	}
}

func newIssuerMismatchError(expected, actual string, originOnly bool) *Error {
	msg := "issuer in OIDC metadata response does not match the issuer used to retrieve metadata"
	if originOnly {
		msg = "issuer origin in OIDC metadata response does not match the issuer used to retrieve metadata"
	}
	return &Error{
		Code:     ErrorCodeIssuerMismatch,
		Message:  fmt.Sprintf("%s (expected %q, got %q)", msg, expected, actual),
		Index:    -1,
		Expected: expected,
		Actual:   actual,
	}
}

func newFieldError(code, field, message string, details error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Field:   field,
		Index:   -1,
		Details: details,
	}
}
