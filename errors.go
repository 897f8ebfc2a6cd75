package chunkrle

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-multierror"
)

// EncoderError is the error type returned by every operation in this module.
// Each error is rooted in one of the sentinels below, so callers can classify
// failures with [errors.Is].
type EncoderError interface {
	error
	WithMessage(message string) EncoderError
	Wrap(err error) EncoderError
}

type baseEncoderError string

const rootError = baseEncoderError("")

var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrIOFailed = rootError.WithMessage("Input/output error")
var ErrNotFound = rootError.WithMessage("No such file or directory")
var ErrPermissionDenied = rootError.WithMessage("Permission denied")

func (e baseEncoderError) Error() string {
	return string(e)
}

func (e baseEncoderError) WithMessage(message string) EncoderError {
	return customEncoderError{
		message:       message,
		originalError: e,
	}
}

func (e baseEncoderError) Wrap(err error) EncoderError {
	return customEncoderError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customEncoderError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customEncoderError) Error() string {
	return e.message
}

func (e customEncoderError) WithMessage(message string) EncoderError {
	return customEncoderError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customEncoderError) Wrap(err error) EncoderError {
	return customEncoderError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customEncoderError) Unwrap() error {
	return e.originalError
}

// NewIOError classifies a failure to open or read `path` and wraps it. The
// result satisfies [errors.Is] for both the returned sentinel and `cause`:
//
//   - [ErrNotFound] if the file doesn't exist
//   - [ErrPermissionDenied] if it can't be opened for reading
//   - [ErrIOFailed] for anything else, including truncated reads
func NewIOError(path string, cause error) EncoderError {
	var kind EncoderError
	switch {
	case errors.Is(cause, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(cause, fs.ErrPermission):
		kind = ErrPermissionDenied
	default:
		kind = ErrIOFailed
	}
	return kind.WithMessage(fmt.Sprintf("`%s`", path)).Wrap(cause)
}
