// Package errors holds the coded error type returned by the tree engine,
// the loader and the CLI. Callers branch on the code with IsCode; the
// message is for humans.
package errors

import "errors"

// Code classifies a failure.
type Code string

const (
	// CodeUnknown is reported for errors that carry no code.
	CodeUnknown Code = "unknown"

	// CodeInvalidInput marks tree data of the wrong shape, such as a node that is
	// not an object or children that are not a list.
	CodeInvalidInput Code = "invalid_input"
	// CodeParseFailed marks a tree file or stdin that could not be decoded.
	CodeParseFailed Code = "parse_failed"

	// CodeNodeNotFound marks an operation that named an id missing from the active
	// index while unknown ids are strict.
	CodeNodeNotFound Code = "node_not_found"
	// CodeConfigurationError marks contradictory or unknown options, for example
	// radio and hierarchical together or an unrecognised mode name.
	CodeConfigurationError Code = "configuration_error"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New returns an Error; err may be nil.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries code anywhere in its chain.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
