package rej

import "fmt"

// ErrorCode identifies the failure class of an Error.
type ErrorCode string

const (
	// CodeNotFound reports that the .rej file or its target does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeIOFailure reports a read or write error other than not-found.
	CodeIOFailure ErrorCode = "IO_FAILURE"
	// CodeMalformedHunk reports a `@@` line that failed the header pattern
	// while strict validation was requested.
	CodeMalformedHunk ErrorCode = "MALFORMED_HUNK"
)

// Error represents a structured failure while locating, merging or writing
// a .rej file. It satisfies the error interface so it can be returned
// directly from the helpers in this package.
type Error struct {
	Code    ErrorCode
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func notFoundError(path string, err error) *Error {
	return &Error{
		Code:    CodeNotFound,
		Path:    path,
		Message: fmt.Sprintf("file not found: %s", path),
		Err:     err,
	}
}

func ioError(op, path string, err error) *Error {
	return &Error{
		Code:    CodeIOFailure,
		Path:    path,
		Message: fmt.Sprintf("failed to %s %s: %v", op, path, err),
		Err:     err,
	}
}

func malformedHunkError(line string) *Error {
	return &Error{
		Code:    CodeMalformedHunk,
		Message: fmt.Sprintf("malformed hunk header: %q", line),
	}
}
